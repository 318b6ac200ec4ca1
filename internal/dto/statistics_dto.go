package dto

// MetricDTO pairs a current count with its delta since the previous read.
// Whether the delta is a snapshot difference or a "new since last check"
// count depends on the metric; see the statistics service.
type MetricDTO struct {
	Count      int `json:"count"`
	Difference int `json:"difference"`
}

type AdminStatsDTO struct {
	Students             MetricDTO `json:"students"`
	Teachers             MetricDTO `json:"teachers"`
	KnowledgeTrailVideos MetricDTO `json:"knowledge_trail_videos"`
	KnowledgeTrailPDFs   MetricDTO `json:"knowledge_trail_pdfs"`
}

type TeacherStatsDTO struct {
	Students     MetricDTO `json:"students"`
	Classes      MetricDTO `json:"classes"`
	Lessons      MetricDTO `json:"lessons"`
	Certificates MetricDTO `json:"certificates"`
}

type StudentStatsDTO struct {
	Points       MetricDTO `json:"points"`
	Medals       MetricDTO `json:"medals"`
	PlayedGames  MetricDTO `json:"played_games"`
	Certificates MetricDTO `json:"certificates"`
}
