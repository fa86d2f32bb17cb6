package normalizer

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

type Provider interface {
	// Normalize разворачивает сырые записи CV в плоские строки выгрузки.
	// Порядок сохраняется, запись с ошибкой преобразования пропускается
	Normalize(records []isverenapimodels.RawRecord) []isverenapimodels.FlatRecord
}

var Instance Provider

type impl struct {
	locale string
}

func NewHandler(locale string) {
	Instance = &impl{
		locale: locale,
	}
}

func (i impl) Normalize(records []isverenapimodels.RawRecord) []isverenapimodels.FlatRecord {
	result := make([]isverenapimodels.FlatRecord, 0, len(records))
	for _, rec := range records {
		flat, err := i.convert(rec)
		if err != nil {
			log.WithError(err).
				WithField("cv_id", rec.GetInt("id")).
				Error("ошибка обработки CV, запись пропущена")
			continue
		}
		result = append(result, flat)
	}
	log.Infof("Обработано %v CV из %v", len(result), len(records))
	return result
}

func (i impl) convert(cv isverenapimodels.RawRecord) (flat isverenapimodels.FlatRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: (%v)", r)
		}
	}()

	user := cv.GetMap("user")
	city := cv.GetMap("city")
	workingHour := cv.GetMap("working_hour")

	flat = isverenapimodels.FlatRecord{
		ID:               cv.GetInt("id"),
		Title:            cv.GetString("title"),
		Slug:             cv.GetString("slug"),
		Name:             user.GetString("name"),
		Surname:          user.GetString("surname"),
		Birthday:         cv.GetString("birthday"),
		Gender:           decodeGender(cv.GetInt("gender_status")),
		MaritalStatus:    decodeMaritalStatus(cv.GetInt("married_status")),
		HasChildren:      decodeHasChildren(cv.GetInt("is_child")),
		City:             city.GetLocalized("name", i.locale),
		PermanentAddress: cv.GetString("permanent_address"),
		ActualAddress:    cv.GetString("actual_address"),
		Phone:            cv.GetString("phone"),
		Email:            cv.GetString("email"),
		WorkingHour:      workingHour.GetLocalized("name", i.locale),
		MinSalary:        cv.GetInt("min_salary"),
		MaxSalary:        cv.GetInt("max_salary"),
		DesiredAddress:   cv.GetString("desired_address"),
		Skills:           formatList(cv.GetJSONList("skills")),
		Languages:        formatLanguages(cv.GetJSONList("language")),
		Experience:       formatExperience(cv.GetJSONList("experience")),
		Education:        formatEducation(cv.GetJSONList("education")),
		Hobbies:          formatList(cv.GetJSONList("hobby")),
		MotivationLetter: cv.GetString("motivation_letter"),
		Note:             cv.GetString("note"),
		Views:            cv.GetInt("reads"),
		CreatedAt:        cv.GetString("created_at"),
		UpdatedAt:        cv.GetString("updated_at"),
		ResumeFile:       cv.GetString("resume"),
		ProfileImage:     user.GetString("image"),
		UserPosition:     user.GetString("position"),
		UserEmail:        user.GetString("email"),
		UserPhone:        user.GetString("phone"),
		CategoryID:       cv.GetInt("category_id"),
		ParentCategoryID: cv.GetInt("parent_category_id"),
		Status:           cv.GetInt("status"),
		IsPremium:        cv.GetInt("is_premium"),
		ShareCount:       cv.GetInt("share"),
	}
	return flat, nil
}

func decodeGender(code int) string {
	switch code {
	case 1:
		return "Male"
	case 2:
		return "Female"
	}
	return "Unknown"
}

func decodeMaritalStatus(code int) string {
	switch code {
	case 1:
		return "Single"
	case 2:
		return "Married - No children"
	case 3:
		return "Married - Has children"
	}
	return "Unknown"
}

func decodeHasChildren(code int) string {
	switch code {
	case 1:
		return "Yes"
	case 2:
		return "No"
	}
	return "Unknown"
}
