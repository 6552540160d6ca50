package controllers

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/dto/requests"
	"medplan-service/internal/pkg/exceptions"
	"medplan-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type EventController struct {
	Log               *zap.Logger
	SchedulingUsecase contracts.SchedulingUsecase
	RequestTimeout    time.Duration
}

var (
	eventControllerInstance *EventController
	onceEventController     sync.Once
)

func NewEventController(logger *zap.Logger, schedulingUsecase contracts.SchedulingUsecase, requestTimeoutInSeconds int) *EventController {
	onceEventController.Do(func() {
		eventControllerInstance = &EventController{
			Log:               logger,
			SchedulingUsecase: schedulingUsecase,
			RequestTimeout:    time.Duration(requestTimeoutInSeconds) * time.Second,
		}
	})
	return eventControllerInstance
}

func (ctrl *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("EventController.CreateEvent requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("EventController.CreateEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateEvent)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("EventController.CreateEvent error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.SchedulingUsecase.Schedule(ctx, request)
	if err != nil {
		ctrl.Log.Error("EventController.CreateEvent error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEventSuccessMessage, response)
}

func (ctrl *EventController) CancelEvent(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("EventController.CancelEvent requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	eventID := chi.URLParam(r, "eventID")
	ctrl.Log.Info("EventController.CancelEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.SchedulingUsecase.Cancel(ctx, eventID)
	if err != nil {
		ctrl.Log.Error("EventController.CancelEvent error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelEventSuccessMessage, response)
}

func (ctrl *EventController) GetEventsByStaff(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("EventController.GetEventsByStaff requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	query := r.URL.Query()
	request := &requests.ListEvents{
		StaffID: chi.URLParam(r, "staffID"),
		From:    query.Get("from"),
		To:      query.Get("to"),
	}

	ctrl.Log.Info("EventController.GetEventsByStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, request.StaffID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.SchedulingUsecase.ListByStaff(ctx, request)
	if err != nil {
		ctrl.Log.Error("EventController.GetEventsByStaff error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEventsSuccessMessage, response)
}
