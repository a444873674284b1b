package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// HeaderClientID идентифицирует браузерного клиента между страницами:
// под этим ключом живёт черновик контактных данных
const HeaderClientID = "X-Client-ID"

type contextKey string

const clientIDKey contextKey = "clientID"

// ClientID требует заголовок X-Client-ID и кладёт его в контекст запроса
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := r.Header.Get(HeaderClientID)
		if clientID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "Cabeçalho " + HeaderClientID + " ausente.",
			})
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIDFromContext возвращает идентификатор клиента из контекста.
// Пустая строка, если middleware не отработал.
func ClientIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(clientIDKey).(string); ok {
		return v
	}
	return ""
}
