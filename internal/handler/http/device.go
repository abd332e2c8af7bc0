package http

import (
	"encoding/json"
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	IngestPunches(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	deviceService device.DeviceService
}

func NewDeviceHandler(deviceService device.DeviceService) DeviceHandler {
	return &deviceHandlerImpl{
		deviceService: deviceService,
	}
}

// IngestPunches handles POST /devices/{deviceID}/punches
func (h *deviceHandlerImpl) IngestPunches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dev, ok := middleware.DeviceFromContext(ctx)
	if !ok {
		response.Unauthorized(w, "Missing device key")
		return
	}

	var req device.IngestPunchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.DeviceID = dev.ID

	result, err := h.deviceService.IngestPunches(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
