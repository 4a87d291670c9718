package drafts

// JobDraft carries every field collected across the job creation wizard. It
// is owned exclusively by the wizard flow and persisted on every change so a
// restart within the expiration window resumes where the user left off.
type JobDraft struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	PayRate         string   `json:"payRate"`
	City            string   `json:"city"`
	StateProvince   string   `json:"stateProvince"`
	Country         string   `json:"country"`
	IsRemote        bool     `json:"isRemote"`
	EmploymentTypes []string `json:"employmentTypes"`
	HiringManagerID int      `json:"hiringManagerId"`
	Description     string   `json:"description"`
}

// DefaultDraft is the fixed initial record the wizard resets to.
func DefaultDraft() JobDraft {
	return JobDraft{
		IsRemote: true,
		Country:  "United States",
	}
}
