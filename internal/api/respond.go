package api

import (
	"encoding/json"
	"net/http"
)

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// decodeJSON читает JSON-тело запроса в целевую структуру.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// respondWithError отправляет ошибку клиенту. Учет запросов по статусам
// ведет httpMetrics, здесь метрик нет.
func respondWithError(w http.ResponseWriter, code int, message string) {
	http.Error(w, message, code)
}
