package middleware

import (
	"context"
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type deviceContextKey string

// DeviceKey holds the authenticated device in the request context.
const DeviceKey deviceContextKey = "device"

// DeviceAuth authenticates the device named in the URL by its
// X-Device-Key header. Handlers downstream read the device through
// DeviceFromContext.
func DeviceAuth(deviceService device.DeviceService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			deviceID := chi.URLParam(r, "deviceID")
			apiKey := r.Header.Get("X-Device-Key")

			if apiKey == "" {
				response.Unauthorized(w, "Missing device key")
				return
			}

			dev, err := deviceService.Authenticate(r.Context(), deviceID, apiKey)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), DeviceKey, dev)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// DeviceFromContext returns the device placed by DeviceAuth.
func DeviceFromContext(ctx context.Context) (device.Device, bool) {
	dev, ok := ctx.Value(DeviceKey).(device.Device)
	return dev, ok
}
