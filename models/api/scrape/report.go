package scrapeapimodels

// Report итог одного запуска сбора
type Report struct {
	RunID     string   `json:"run_id"`
	Collected int      `json:"collected"` //кол-во собранных CV
	Processed int      `json:"processed"` //кол-во CV после нормализации
	Skipped   int      `json:"skipped"`   //кол-во записей, пропущенных при нормализации
	Files     []string `json:"files,omitempty"`
}
