package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BarberQueue/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "не указаны услуга или имя клиента"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgShopNotFound       = "парикмахерская не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgShopClosed         = "парикмахерская закрыта в выбранную дату"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(shopID)
	if err != nil {
		h.logger.Warn("POST /shops/{id}/bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /shops/{id}/bookings - Slot not available: shop_id=%s, date=%s, start=%s",
				shopID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrShopNotFound):
			h.logger.Warn("POST /shops/{id}/bookings - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /shops/{id}/bookings - Service not found: shop_id=%s, service_id=%s", shopID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/bookings - Invalid input: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /shops/{id}/bookings - Shop closed: shop_id=%s, date=%s", shopID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgShopClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /shops/{id}/bookings - Invalid booking date: shop_id=%s, date=%s", shopID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /shops/{id}/bookings - Date too far in future: shop_id=%s, date=%s", shopID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /shops/{id}/bookings - Invalid time slot: shop_id=%s, start=%s", shopID, req.StartTime)
			handlers.RespondUnprocessable(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /shops/{id}/bookings - Too late to book: shop_id=%s, start=%s", shopID, req.StartTime)
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		default:
			h.logger.Error("POST /shops/{id}/bookings - Failed to create booking: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/bookings - Booking created successfully: booking_id=%s, shop_id=%s, status=%s",
		result.ID, shopID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
