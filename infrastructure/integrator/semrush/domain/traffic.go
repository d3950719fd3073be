package domain

// DailyRecord é um dia da série de tráfego orgânico estimado de um domínio
type DailyRecord struct {
	Date           string `json:"date"`
	OrganicTraffic int    `json:"organic_traffic"`
}

type DateRanges struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TrafficData é a resposta do SEMrush para um domínio: série diária de 12 meses
// mais a janela efetivamente consultada
type TrafficData struct {
	DailyData  []DailyRecord `json:"daily_data"`
	DateRanges DateRanges    `json:"date_ranges"`
}
