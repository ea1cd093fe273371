//go:build !integration

package use_cases

import (
	"context"
	"strings"
	"testing"
	"time"

	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

func TestGetPayPageUseCaseExecutePublic(t *testing.T) {
	stored := dto.PaymentRequestResource{
		ID:        "pr_1",
		Public:    true,
		PayeeName: "Ravi Stores",
		UPIID:     "merchant@icici",
		Amount:    float64Ptr(250.5),
		Status:    "pending",
		UPILink:   "upi://pay?pa=merchant@icici&pn=Ravi+Stores&am=250.5&cu=INR&tn=Payment",
		CreatedAt: time.Now().UTC(),
	}
	readModel := &fakePaymentRequestReadModel{public: map[string]dto.PaymentRequestResource{"pr_1": stored}}
	qrGateway := fakeQRGateway{}

	useCase := NewGetPayPageUseCase(readModel, qrGateway, fixedClock{now: time.Now().UTC()})
	page, appErr := useCase.Execute(context.Background(), dto.GetPayPageQuery{ID: "pr_1", Public: true})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if page.UPILink != stored.UPILink {
		t.Fatalf("expected stored link, got %q", page.UPILink)
	}
	if !strings.Contains(page.QRCodeURL, "qr=") {
		t.Fatalf("expected qr url from gateway, got %q", page.QRCodeURL)
	}
	if page.Amount == nil || *page.Amount != 250.5 {
		t.Fatalf("expected stored amount, got %v", page.Amount)
	}
}

func TestGetPayPageUseCaseExecuteNotFound(t *testing.T) {
	useCase := NewGetPayPageUseCase(&fakePaymentRequestReadModel{}, fakeQRGateway{}, fixedClock{now: time.Now().UTC()})

	_, appErr := useCase.Execute(context.Background(), dto.GetPayPageQuery{ID: "pr_missing", Public: true})
	if appErr == nil {
		t.Fatalf("expected not found error")
	}
	if appErr.Type != apperrors.TypeNotFound {
		t.Fatalf("expected not_found type, got %s", appErr.Type)
	}
}

func TestGetPayPageUseCaseExecuteForeignOwnerReadsAsNotFound(t *testing.T) {
	ownerID := "user-1"
	stored := dto.PaymentRequestResource{ID: "pr_1", OwnerID: &ownerID, Status: "pending"}
	readModel := &fakePaymentRequestReadModel{
		owned: map[string]dto.PaymentRequestResource{"user-1/pr_1": stored},
	}
	useCase := NewGetPayPageUseCase(readModel, fakeQRGateway{}, fixedClock{now: time.Now().UTC()})

	caller := "user-2"
	_, appErr := useCase.Execute(context.Background(), dto.GetPayPageQuery{ID: "pr_1", CallerID: &caller})
	if appErr == nil {
		t.Fatalf("expected not found error")
	}
	if appErr.Type != apperrors.TypeNotFound {
		t.Fatalf("expected not_found type, got %s", appErr.Type)
	}

	_, appErr = useCase.Execute(context.Background(), dto.GetPayPageQuery{ID: "pr_1"})
	if appErr == nil || appErr.Type != apperrors.TypeNotFound {
		t.Fatalf("expected not_found for anonymous private lookup, got %+v", appErr)
	}
}

func TestGetPayPageUseCaseExecuteExpiredWinsOverStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	stored := dto.PaymentRequestResource{
		ID:        "pr_1",
		Public:    true,
		Status:    "completed",
		ExpiresAt: &past,
	}
	readModel := &fakePaymentRequestReadModel{public: map[string]dto.PaymentRequestResource{"pr_1": stored}}
	useCase := NewGetPayPageUseCase(readModel, fakeQRGateway{}, fixedClock{now: now})

	_, appErr := useCase.Execute(context.Background(), dto.GetPayPageQuery{ID: "pr_1", Public: true})
	if appErr == nil {
		t.Fatalf("expected expired error")
	}
	if appErr.Type != apperrors.TypeExpired {
		t.Fatalf("expected expired type, got %s", appErr.Type)
	}
}

func TestGetPayPageUseCaseExecuteCustomAmountRebuildsLink(t *testing.T) {
	stored := dto.PaymentRequestResource{
		ID:        "pr_1",
		Public:    true,
		PayeeName: "Ravi Stores",
		UPIID:     "merchant@icici",
		Status:    "pending",
		UPILink:   "upi://pay?pa=merchant@icici&pn=Ravi+Stores&cu=INR&tn=Payment",
	}
	readModel := &fakePaymentRequestReadModel{public: map[string]dto.PaymentRequestResource{"pr_1": stored}}
	useCase := NewGetPayPageUseCase(readModel, fakeQRGateway{}, fixedClock{now: time.Now().UTC()})

	page, appErr := useCase.Execute(context.Background(), dto.GetPayPageQuery{
		ID:           "pr_1",
		Public:       true,
		CustomAmount: float64Ptr(75),
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if !strings.Contains(page.UPILink, "am=75") {
		t.Fatalf("expected rebuilt link with am=75, got %q", page.UPILink)
	}
	if page.Amount == nil || *page.Amount != 75 {
		t.Fatalf("expected effective amount 75, got %v", page.Amount)
	}
	if page.Request.UPILink != stored.UPILink {
		t.Fatalf("stored link must stay untouched, got %q", page.Request.UPILink)
	}
}

func TestGetPayPageUseCaseExecuteCustomAmountIgnoredForFixedRequests(t *testing.T) {
	stored := dto.PaymentRequestResource{
		ID:      "pr_1",
		Public:  true,
		Amount:  float64Ptr(100),
		Status:  "pending",
		UPILink: "upi://pay?pa=merchant@icici&pn=Ravi&am=100&cu=INR&tn=Payment",
	}
	readModel := &fakePaymentRequestReadModel{public: map[string]dto.PaymentRequestResource{"pr_1": stored}}
	useCase := NewGetPayPageUseCase(readModel, fakeQRGateway{}, fixedClock{now: time.Now().UTC()})

	page, appErr := useCase.Execute(context.Background(), dto.GetPayPageQuery{
		ID:           "pr_1",
		Public:       true,
		CustomAmount: float64Ptr(9999),
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if page.UPILink != stored.UPILink {
		t.Fatalf("fixed amount link must not be rebuilt, got %q", page.UPILink)
	}
	if page.Amount == nil || *page.Amount != 100 {
		t.Fatalf("expected stored amount 100, got %v", page.Amount)
	}
}

type fakePaymentRequestReadModel struct {
	public map[string]dto.PaymentRequestResource
	owned  map[string]dto.PaymentRequestResource
	list   []dto.PaymentRequestResource
	appErr *apperrors.AppError
}

func (f *fakePaymentRequestReadModel) GetPublic(_ context.Context, id string) (dto.PaymentRequestResource, bool, *apperrors.AppError) {
	if f.appErr != nil {
		return dto.PaymentRequestResource{}, false, f.appErr
	}
	resource, found := f.public[id]

	return resource, found, nil
}

func (f *fakePaymentRequestReadModel) GetOwned(_ context.Context, ownerID, id string) (dto.PaymentRequestResource, bool, *apperrors.AppError) {
	if f.appErr != nil {
		return dto.PaymentRequestResource{}, false, f.appErr
	}
	resource, found := f.owned[ownerID+"/"+id]

	return resource, found, nil
}

func (f *fakePaymentRequestReadModel) ListByOwner(_ context.Context, ownerID string) ([]dto.PaymentRequestResource, *apperrors.AppError) {
	if f.appErr != nil {
		return nil, f.appErr
	}

	return f.list, nil
}

type fakeQRGateway struct{}

func (fakeQRGateway) ImageURL(upiLink string) string {
	return "https://qr.example/render?qr=" + upiLink
}

func (fakeQRGateway) Fetch(context.Context, string) ([]byte, string, *apperrors.AppError) {
	return []byte{0x89, 0x50}, "image/png", nil
}
