package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	"upilinker/internal/domain/upilink"
	valueobjects "upilinker/internal/domain/value_objects"
	apperrors "upilinker/internal/shared_kernel/errors"
)

// buildPaymentLinkUseCase serves the embed widget: it renders a link and QR
// URL from the submitted fields without storing anything.
type buildPaymentLinkUseCase struct {
	qrGateway portsout.QRImageGateway
}

func NewBuildPaymentLinkUseCase(qrGateway portsout.QRImageGateway) portsin.BuildPaymentLinkUseCase {
	return &buildPaymentLinkUseCase{qrGateway: qrGateway}
}

func (u *buildPaymentLinkUseCase) Execute(ctx context.Context, command dto.BuildPaymentLinkCommand) (dto.BuildPaymentLinkOutput, *apperrors.AppError) {
	payeeName, appErr := valueobjects.NormalizePayeeName(command.PayeeName)
	if appErr != nil {
		return dto.BuildPaymentLinkOutput{}, appErr
	}
	upiID, appErr := valueobjects.NormalizeUPIID(command.UPIID)
	if appErr != nil {
		return dto.BuildPaymentLinkOutput{}, appErr
	}
	// The widget always allows an open amount.
	amount, appErr := valueobjects.NormalizeAmount(command.Amount, true)
	if appErr != nil {
		return dto.BuildPaymentLinkOutput{}, appErr
	}

	link := upilink.Build(upilink.Params{
		UPIID:     upiID,
		PayeeName: payeeName,
		Amount:    amount,
		Note:      strings.TrimSpace(command.Note),
	})

	output := dto.BuildPaymentLinkOutput{UPILink: link}
	if u.qrGateway != nil {
		output.QRCodeURL = u.qrGateway.ImageURL(link)
	}

	return output, nil
}
