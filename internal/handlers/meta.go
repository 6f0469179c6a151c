package handlers

import (
	"RecipeBox/internal/model"
	"net/http"
)

// Health проверка живости
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stickers словарь диетических стикеров
func Stickers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.Stickers)
}
