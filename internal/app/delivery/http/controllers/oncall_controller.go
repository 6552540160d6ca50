package controllers

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/exceptions"
	"medplan-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OnCallController struct {
	Log            *zap.Logger
	OnCallService  contracts.OnCallService
	RequestTimeout time.Duration
}

var (
	onCallControllerInstance *OnCallController
	onceOnCallController     sync.Once
)

func NewOnCallController(logger *zap.Logger, onCallService contracts.OnCallService, requestTimeoutInSeconds int) *OnCallController {
	onceOnCallController.Do(func() {
		onCallControllerInstance = &OnCallController{
			Log:            logger,
			OnCallService:  onCallService,
			RequestTimeout: time.Duration(requestTimeoutInSeconds) * time.Second,
		}
	})
	return onCallControllerInstance
}

func (ctrl *OnCallController) GetOnCallStaff(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("OnCallController.GetOnCallStaff requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	staffIDs, err := ctrl.OnCallService.ListOnCallStaff(ctx)
	if err != nil {
		ctrl.Log.Error("OnCallController.GetOnCallStaff error from service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOnCallSuccessMessage, staffIDs)
}

func (ctrl *OnCallController) AddOnCallStaff(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("OnCallController.AddOnCallStaff requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	staffID := chi.URLParam(r, "staffID")
	ctrl.Log.Info("OnCallController.AddOnCallStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, staffID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	if err := ctrl.OnCallService.AddOnCallStaff(ctx, staffID); err != nil {
		ctrl.Log.Error("OnCallController.AddOnCallStaff error from service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddOnCallSuccessMessage, nil)
}

func (ctrl *OnCallController) RemoveOnCallStaff(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("OnCallController.RemoveOnCallStaff requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	staffID := chi.URLParam(r, "staffID")
	ctrl.Log.Info("OnCallController.RemoveOnCallStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, staffID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	if err := ctrl.OnCallService.RemoveOnCallStaff(ctx, staffID); err != nil {
		ctrl.Log.Error("OnCallController.RemoveOnCallStaff error from service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveOnCallSuccessMessage, nil)
}
