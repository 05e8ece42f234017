package httpapi

import "github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"

type playersStatsQueryRequest struct {
	StatsType string `validate:"omitempty,oneof=tot avg"`
	DateFrom  string `validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `validate:"omitempty,datetime=2006-01-02"`
	Weeks     []int  `validate:"omitempty,dive,min=1"`
}

type teamsPIRQueryRequest struct {
	StatsID    int `validate:"omitempty,min=1"`
	PositionID int `validate:"omitempty,min=1"`
}

type seasonDTO struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Alias     string `json:"alias,omitempty"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type clubDTO struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
	Crest string `json:"crest,omitempty"`
}

func seasonToDTO(v roster.Season) seasonDTO {
	return seasonDTO{
		Code:      v.Code,
		Name:      v.Name,
		Alias:     v.Alias,
		Year:      v.Year,
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
	}
}

func clubToDTO(v roster.Club) clubDTO {
	return clubDTO{
		Code:  v.Code,
		Name:  v.Name,
		Alias: v.Alias,
		Crest: v.Crest,
	}
}
