package domain

// TrackingKeywordRef relaciona o id opaco do keyword ao texto exibido
type TrackingKeywordRef struct {
	ID      string `json:"_id"`
	Keyword string `json:"kw"`
}

type TrackingLocation struct {
	Label string `json:"label"`
}

type Tracking struct {
	ID       string           `json:"_id"`
	Domain   string           `json:"domain"`
	Location TrackingLocation `json:"location"`
}

// TrackingDetail é a resposta da consulta de detalhe de um tracking do SERPWatcher
type TrackingDetail struct {
	Tracking Tracking             `json:"tracking"`
	Keywords []TrackingKeywordRef `json:"keywords"`
}

// KeywordRank agrupa a última posição e a média do período
type KeywordRank struct {
	Last FlexInt   `json:"last"`
	Avg  FlexFloat `json:"avg"`
}

// KeywordStats é o registro de um keyword dentro de uma janela de datas.
// Rank ausente ou acima de 100 significa fora do top-100.
type KeywordStats struct {
	ID              string      `json:"_id"`
	Rank            KeywordRank `json:"rank"`
	RankChange      FlexInt     `json:"rank_change"`
	SearchVolume    FlexInt     `json:"search_volume"`
	EstimatedVisits FlexInt     `json:"estimated_visits"`
}

// TrackingStats é a resposta da consulta de estatísticas de um tracking
type TrackingStats struct {
	Keywords []KeywordStats `json:"keywords"`
}
