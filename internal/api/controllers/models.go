package controllers

import "github.com/mcorpas/podarc/internal/domain"

type EpisodeListResponse struct {
	Episodes []*domain.Episode `json:"episodes"`
	Count    int               `json:"count"`
}

type RunListResponse struct {
	Runs  []*domain.FetchRun `json:"runs"`
	Count int                `json:"count"`
}

type RunDetailResponse struct {
	Results []*domain.FetchResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
