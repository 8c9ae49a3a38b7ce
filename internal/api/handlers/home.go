package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils/response"
)

func Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, map[string]string{"message": "Welcome to the Cymbal Sports API"})
	}
}
