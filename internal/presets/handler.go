package presets

import (
	"net/http"

	"github.com/threadgenius/threadgenius/internal/api"
)

// ListTones serves the tone table so clients can render the picker.
func ListTones(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, Tones())
}

// ListNiches serves the niche table.
func ListNiches(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, Niches())
}
