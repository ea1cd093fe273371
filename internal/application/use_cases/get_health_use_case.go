package use_cases

import (
	"context"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	valueobjects "upilinker/internal/domain/value_objects"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type getHealthUseCase struct{}

func NewGetHealthUseCase() portsin.GetHealthUseCase {
	return &getHealthUseCase{}
}

func (u *getHealthUseCase) Execute(_ context.Context, _ dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError) {
	status := valueobjects.NewHealthyStatus()

	return dto.HealthOutput{
		Status: status.String(),
	}, nil
}
