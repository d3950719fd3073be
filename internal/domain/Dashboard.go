package domain

import (
	"time"
)

// DateWindow é um intervalo fechado de datas no formato de armazenamento (2006-01-02)
type DateWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// MonthWindow é um mês-calendário completo, com as datas também no formato compacto
// exigido pelas APIs dos provedores (20060102)
type MonthWindow struct {
	Label        string `json:"label"` // ex: "Oct 2024"
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartCompact string `json:"-"`
	EndCompact   string `json:"-"`
}

// PeriodComparison é a variação percentual entre dois períodos.
// Convenção documentada: previous == 0 resulta em {Change: 0, IsIncrease: true}.
type PeriodComparison struct {
	Change     float64 `json:"change"`
	IsIncrease bool    `json:"is_increase"`
}

// MonthLabels carrega os rótulos curtos do mês corrente do relatório e do anterior
type MonthLabels struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
}

// DashboardCacheEntry é a linha persistida do cache de dashboards. O payload é o
// snapshot serializado, tipado por provedor no momento da leitura.
type DashboardCacheEntry struct {
	ID           int          `json:"id"`
	DatasourceID string       `json:"datasource_id"`
	ResourceID   string       `json:"resource_id"`
	Provider     ProviderType `json:"provider"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	Payload      []byte       `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// MangoolsDashboardData é o snapshot do dashboard de keywords do SERPWatcher
type MangoolsDashboardData struct {
	Domain        string      `json:"domain"`
	Location      string      `json:"location"`
	TotalKeywords int         `json:"total_keywords"`
	MonthA        MonthWindow `json:"month_a"`
	MonthB        MonthWindow `json:"month_b"`

	// Totais de keywords ranqueadas (top-100) em cada mês e a variação entre eles
	RankedKeywordsA int              `json:"ranked_keywords_a"`
	RankedKeywordsB int              `json:"ranked_keywords_b"`
	RankedChange    PeriodComparison `json:"ranked_change"`

	Keywords *KeywordClassification `json:"keywords"`
}

// GADailyRecord é um dia da série de tráfego orgânico do Google Analytics
type GADailyRecord struct {
	Date        string `json:"date"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
}

type GADashboardData struct {
	PropertyID   string  `json:"property_id"`
	PropertyName string  `json:"property_name"`
	Timezone     *string `json:"timezone"`
	Currency     *string `json:"currency"`

	DateRange DateWindow      `json:"date_range"`
	Labels    MonthLabels     `json:"labels"`
	DailyData []GADailyRecord `json:"daily_data"`

	LastMonthOrganicSessions        int `json:"last_month_organic_sessions"`
	PreviousMonthOrganicSessions    int `json:"previous_month_organic_sessions"`
	LastMonthOrganicConversions     int `json:"last_month_organic_conversions"`
	PreviousMonthOrganicConversions int `json:"previous_month_organic_conversions"`

	SessionsChange    PeriodComparison `json:"sessions_change"`
	ConversionsChange PeriodComparison `json:"conversions_change"`
}

// SemrushDailyRecord é um dia da série de tráfego orgânico estimado do SEMrush
type SemrushDailyRecord struct {
	Date           string `json:"date"`
	OrganicTraffic int    `json:"organic_traffic"`
}

type SemrushDashboardData struct {
	Domain string `json:"domain"`

	DateRange DateWindow           `json:"date_range"`
	Labels    MonthLabels          `json:"labels"`
	DailyData []SemrushDailyRecord `json:"daily_data"`

	LastMonthTotal     int `json:"last_month_total"`
	PreviousMonthTotal int `json:"previous_month_total"`

	TrafficChange PeriodComparison `json:"traffic_change"`
}
