package euroleague

type seasonItem struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Alias     string `json:"alias"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type personItem struct {
	Person struct {
		Code   string            `json:"code"`
		Name   string            `json:"name"`
		Alias  string            `json:"alias"`
		Images map[string]string `json:"images"`
	} `json:"person"`
	Club struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"club"`
	Images map[string]string `json:"images"`
}

type clubItem struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Alias  string            `json:"alias"`
	Images map[string]string `json:"images"`
}
