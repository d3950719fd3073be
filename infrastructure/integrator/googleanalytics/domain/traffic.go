package domain

// DailyRecord é um dia da série de tráfego orgânico de uma propriedade
type DailyRecord struct {
	Date               string `json:"date"`
	OrganicSessions    int    `json:"organic_sessions"`
	OrganicConversions int    `json:"organic_conversions"`
}

type DateRanges struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TrafficData é a resposta consolidada do serviço de relatórios do GA para uma
// propriedade: série diária de 12 meses mais a janela efetivamente consultada
type TrafficData struct {
	DailyData  []DailyRecord `json:"daily_data"`
	DateRanges DateRanges    `json:"date_ranges"`
}
