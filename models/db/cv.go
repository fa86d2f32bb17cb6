package dbmodels

import (
	isverenapimodels "isveren-scraper/models/api/isveren"
)

// CvRecord сохранённая строка выгрузки CV
type CvRecord struct {
	BaseModel
	RunID            string `gorm:"index;type:varchar(36)"` // идентификатор запуска сбора
	CvID             int    `gorm:"index"`                  // id CV на стороне источника
	Title            string `gorm:"type:varchar(255)"`
	Slug             string `gorm:"type:varchar(255)"`
	Name             string `gorm:"type:varchar(255)"`
	Surname          string `gorm:"type:varchar(255)"`
	Birthday         string `gorm:"type:varchar(50)"`
	Gender           string `gorm:"type:varchar(20)"`
	MaritalStatus    string `gorm:"type:varchar(50)"`
	HasChildren      string `gorm:"type:varchar(20)"`
	City             string `gorm:"type:varchar(255)"`
	PermanentAddress string
	ActualAddress    string
	Phone            string `gorm:"type:varchar(50)"`
	Email            string `gorm:"type:varchar(255)"`
	WorkingHour      string `gorm:"type:varchar(255)"`
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
	CvCreatedAt      string `gorm:"type:varchar(50)"`
	CvUpdatedAt      string `gorm:"type:varchar(50)"`
	ResumeFile       string
	ProfileImage     string
	UserPosition     string `gorm:"type:varchar(255)"`
	UserEmail        string `gorm:"type:varchar(255)"`
	UserPhone        string `gorm:"type:varchar(50)"`
	CategoryID       int
	ParentCategoryID int
	Status           int
	IsPremium        int
	ShareCount       int
}

func NewCvRecord(runID string, flat isverenapimodels.FlatRecord) CvRecord {
	return CvRecord{
		RunID:            runID,
		CvID:             flat.ID,
		Title:            flat.Title,
		Slug:             flat.Slug,
		Name:             flat.Name,
		Surname:          flat.Surname,
		Birthday:         flat.Birthday,
		Gender:           flat.Gender,
		MaritalStatus:    flat.MaritalStatus,
		HasChildren:      flat.HasChildren,
		City:             flat.City,
		PermanentAddress: flat.PermanentAddress,
		ActualAddress:    flat.ActualAddress,
		Phone:            flat.Phone,
		Email:            flat.Email,
		WorkingHour:      flat.WorkingHour,
		MinSalary:        flat.MinSalary,
		MaxSalary:        flat.MaxSalary,
		DesiredAddress:   flat.DesiredAddress,
		Skills:           flat.Skills,
		Languages:        flat.Languages,
		Experience:       flat.Experience,
		Education:        flat.Education,
		Hobbies:          flat.Hobbies,
		MotivationLetter: flat.MotivationLetter,
		Note:             flat.Note,
		Views:            flat.Views,
		CvCreatedAt:      flat.CreatedAt,
		CvUpdatedAt:      flat.UpdatedAt,
		ResumeFile:       flat.ResumeFile,
		ProfileImage:     flat.ProfileImage,
		UserPosition:     flat.UserPosition,
		UserEmail:        flat.UserEmail,
		UserPhone:        flat.UserPhone,
		CategoryID:       flat.CategoryID,
		ParentCategoryID: flat.ParentCategoryID,
		Status:           flat.Status,
		IsPremium:        flat.IsPremium,
		ShareCount:       flat.ShareCount,
	}
}

// ToFlatRecord обратное преобразование для выгрузки сохранённых строк
func (r CvRecord) ToFlatRecord() isverenapimodels.FlatRecord {
	return isverenapimodels.FlatRecord{
		ID:               r.CvID,
		Title:            r.Title,
		Slug:             r.Slug,
		Name:             r.Name,
		Surname:          r.Surname,
		Birthday:         r.Birthday,
		Gender:           r.Gender,
		MaritalStatus:    r.MaritalStatus,
		HasChildren:      r.HasChildren,
		City:             r.City,
		PermanentAddress: r.PermanentAddress,
		ActualAddress:    r.ActualAddress,
		Phone:            r.Phone,
		Email:            r.Email,
		WorkingHour:      r.WorkingHour,
		MinSalary:        r.MinSalary,
		MaxSalary:        r.MaxSalary,
		DesiredAddress:   r.DesiredAddress,
		Skills:           r.Skills,
		Languages:        r.Languages,
		Experience:       r.Experience,
		Education:        r.Education,
		Hobbies:          r.Hobbies,
		MotivationLetter: r.MotivationLetter,
		Note:             r.Note,
		Views:            r.Views,
		CreatedAt:        r.CvCreatedAt,
		UpdatedAt:        r.CvUpdatedAt,
		ResumeFile:       r.ResumeFile,
		ProfileImage:     r.ProfileImage,
		UserPosition:     r.UserPosition,
		UserEmail:        r.UserEmail,
		UserPhone:        r.UserPhone,
		CategoryID:       r.CategoryID,
		ParentCategoryID: r.ParentCategoryID,
		Status:           r.Status,
		IsPremium:        r.IsPremium,
		ShareCount:       r.ShareCount,
	}
}
