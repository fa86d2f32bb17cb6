package isverenapimodels

// FlatRecord одна строка выгрузки. Набор и порядок полей фиксированы,
// чтобы колонки в CSV/XLSX совпадали у всех записей
type FlatRecord struct {
	ID               int
	Title            string
	Slug             string
	Name             string
	Surname          string
	Birthday         string
	Gender           string
	MaritalStatus    string
	HasChildren      string
	City             string
	PermanentAddress string
	ActualAddress    string
	Phone            string
	Email            string
	WorkingHour      string
	MinSalary        int
	MaxSalary        int
	DesiredAddress   string
	Skills           string
	Languages        string
	Experience       string
	Education        string
	Hobbies          string
	MotivationLetter string
	Note             string
	Views            int
	CreatedAt        string
	UpdatedAt        string
	ResumeFile       string
	ProfileImage     string
	UserPosition     string
	UserEmail        string
	UserPhone        string
	CategoryID       int
	ParentCategoryID int
	Status           int
	IsPremium        int
	ShareCount       int
}

var FlatHeaders = []string{
	"id", "title", "slug", "name", "surname", "birthday", "gender", "marital_status",
	"has_children", "city", "permanent_address", "actual_address", "phone", "email",
	"working_hour", "min_salary", "max_salary", "desired_address", "skills", "languages",
	"experience", "education", "hobbies", "motivation_letter", "note", "views",
	"created_at", "updated_at", "resume_file", "profile_image", "user_position",
	"user_email", "user_phone", "category_id", "parent_category_id", "status",
	"is_premium", "share_count",
}

// Row значения в порядке FlatHeaders
func (r FlatRecord) Row() []interface{} {
	return []interface{}{
		r.ID, r.Title, r.Slug, r.Name, r.Surname, r.Birthday, r.Gender, r.MaritalStatus,
		r.HasChildren, r.City, r.PermanentAddress, r.ActualAddress, r.Phone, r.Email,
		r.WorkingHour, r.MinSalary, r.MaxSalary, r.DesiredAddress, r.Skills, r.Languages,
		r.Experience, r.Education, r.Hobbies, r.MotivationLetter, r.Note, r.Views,
		r.CreatedAt, r.UpdatedAt, r.ResumeFile, r.ProfileImage, r.UserPosition,
		r.UserEmail, r.UserPhone, r.CategoryID, r.ParentCategoryID, r.Status,
		r.IsPremium, r.ShareCount,
	}
}
