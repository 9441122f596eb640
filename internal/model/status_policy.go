package model

import "net/http"

var (
	DeletePolicy   = StatusPolicy{successHttpCodes: []int{http.StatusOK, http.StatusAccepted}}
	DocumentPolicy = StatusPolicy{successHttpCodes: []int{http.StatusOK, http.StatusCreated, http.StatusAccepted}}
	CursorPolicy   = StatusPolicy{successHttpCodes: []int{http.StatusOK, http.StatusCreated}}
)

// StatusPolicy lists the HTTP codes an operation treats as success. Nothing is retried.
type StatusPolicy struct {
	successHttpCodes []int
}

func (this *StatusPolicy) IsSuccess(httpCode int) bool {
	for _, v := range this.successHttpCodes {
		if v == httpCode {
			return true
		}
	}
	return false
}
