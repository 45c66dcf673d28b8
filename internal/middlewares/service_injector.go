package middlewares

import (
	"context"
	"fmt"
	"net/http"
)

type key int

const (
	OrderBoardKey key = iota
	NotificationCenterKey
	CatalogKey
	OrderRegistryKey
)

type Injection struct {
	key     key
	service interface{}
}

func Provide(serviceKey key, service interface{}) Injection {
	return Injection{key: serviceKey, service: service}
}

// ServiceInjectorMiddleware puts every provided service into the request
// context under its key.
func ServiceInjectorMiddleware(injections ...Injection) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			for _, injection := range injections {
				ctx = context.WithValue(ctx, injection.key, injection.service)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey))
		return nil
	}

	return &foundService
}
