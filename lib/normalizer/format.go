package normalizer

import (
	"fmt"
	"strings"

	isverenapimodels "isveren-scraper/models/api/isveren"
)

func asRecord(item interface{}) (isverenapimodels.RawRecord, bool) {
	m, ok := item.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return isverenapimodels.RawRecord(m), true
}

// formatList навыки и хобби, значения через запятую, пустые отбрасываются
func formatList(items []interface{}) string {
	formatted := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		value := fmt.Sprint(item)
		if value != "" {
			formatted = append(formatted, value)
		}
	}
	return strings.Join(formatted, ", ")
}

// formatLanguages элементы вида "название (уровень)", уровень источник хранит
// в поле currentlyWorked, записи без названия отбрасываются
func formatLanguages(languages []interface{}) string {
	formatted := make([]string, 0, len(languages))
	for _, item := range languages {
		lang, ok := asRecord(item)
		if !ok {
			continue
		}
		name := lang.GetString("name")
		if name == "" {
			continue
		}
		level := lang.GetString("currentlyWorked")
		if level != "" {
			formatted = append(formatted, fmt.Sprintf("%s (%s)", name, level))
		} else {
			formatted = append(formatted, name)
		}
	}
	return strings.Join(formatted, ", ")
}

func formatExperience(experiences []interface{}) string {
	formatted := make([]string, 0, len(experiences))
	for _, item := range experiences {
		exp, ok := asRecord(item)
		if !ok {
			continue
		}
		company := exp.GetString("company")
		position := exp.GetString("position")

		expStr := ""
		switch {
		case company != "" && position != "":
			expStr = fmt.Sprintf("%s at %s", position, company)
		case company != "":
			expStr = company
		default:
			expStr = position
		}
		expStr += datesSuffix(
			exp.GetString("skill_start_date"),
			exp.GetString("skill_end_date"),
			exp.GetString("currentlyWorked"))

		if expStr != "" {
			formatted = append(formatted, expStr)
		}
	}
	return strings.Join(formatted, " | ")
}

func formatEducation(educations []interface{}) string {
	formatted := make([]string, 0, len(educations))
	for _, item := range educations {
		edu, ok := asRecord(item)
		if !ok {
			continue
		}
		eduStr := edu.GetString("name")
		if specialization := edu.GetString("specialization"); specialization != "" {
			eduStr += fmt.Sprintf(" - %s", specialization)
		}
		eduStr += datesSuffix(
			edu.GetString("education_start_date"),
			edu.GetString("education_end_date"),
			edu.GetString("currentlyStudying"))

		if eduStr != "" {
			formatted = append(formatted, eduStr)
		}
	}
	return strings.Join(formatted, " | ")
}

// datesSuffix период вида " (start - end)", без даты начала суффикса нет,
// при признаке "по настоящее время" или отсутствии даты окончания - " (start - Present)"
func datesSuffix(startDate, endDate, currentlyFlag string) string {
	if startDate == "" {
		return ""
	}
	if currentlyFlag == "1" || endDate == "" {
		return fmt.Sprintf(" (%s - Present)", startDate)
	}
	return fmt.Sprintf(" (%s - %s)", startDate, endDate)
}
