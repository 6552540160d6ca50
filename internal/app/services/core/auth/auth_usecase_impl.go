package auth

import (
	"context"
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/dto/requests"
	"medplan-service/internal/pkg/dto/responses"
	"medplan-service/internal/pkg/exceptions"
	"medplan-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	StaffRepository contracts.StaffRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	staffRepository contracts.StaffRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			StaffRepository: staffRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterStaff) (*responses.Staff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.StaffRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	staffMember := &models.StaffMember{
		Email:         request.Email,
		FullName:      request.FullName,
		Role:          models.StaffRole(request.Role),
		Specialty:     request.Specialty,
		LicenseNumber: request.LicenseNumber,
		Password:      string(hashedPassword),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	staffID, err := uc.StaffRepository.Create(ctx, staffMember)
	if err != nil {
		return nil, err
	}
	staffMember.ID = staffID

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, staffID),
	)
	return buildStaffResponse(staffMember), nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginStaff) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	staffMember, err := uc.StaffRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if staffMember == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !staffMember.Active {
		return nil, exceptions.ErrStaffInactive(nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staffMember.Password), []byte(request.Password)); err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	token, err := utils.GenerateStaffJWT(
		staffMember.ID,
		string(staffMember.Role),
		uc.InternalConfig.JWT.Secret,
		uc.InternalConfig.JWT.ExpTimeInHour,
	)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, staffMember.ID),
	)
	return &responses.Login{
		Token: token,
		Staff: *buildStaffResponse(staffMember),
	}, nil
}

func (uc *authUsecase) SetActive(ctx context.Context, staffID string, active bool) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	staffMember, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return err
	}
	if staffMember == nil {
		return exceptions.ErrStaffNotFound(nil)
	}

	if err := uc.StaffRepository.UpdateActive(ctx, staffID, active); err != nil {
		return err
	}

	uc.Log.Info("authUsecase.SetActive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStaffIDKey, staffID),
		zap.Bool("active", active),
	)
	return nil
}

func buildStaffResponse(staffMember *models.StaffMember) *responses.Staff {
	return &responses.Staff{
		ID:        staffMember.ID,
		Email:     staffMember.Email,
		FullName:  staffMember.FullName,
		Role:      string(staffMember.Role),
		Specialty: staffMember.Specialty,
		Active:    staffMember.Active,
	}
}
