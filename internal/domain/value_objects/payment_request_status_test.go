package valueobjects

import "testing"

func TestParsePaymentRequestStatus(t *testing.T) {
	for _, raw := range []string{"pending", "completed", "failed"} {
		status, appErr := ParsePaymentRequestStatus(raw)
		if appErr != nil {
			t.Fatalf("expected %s to parse, got %+v", raw, appErr)
		}
		if status.String() != raw {
			t.Fatalf("expected %s, got %s", raw, status)
		}
	}

	_, appErr := ParsePaymentRequestStatus("refunded")
	if appErr == nil {
		t.Fatalf("expected error for unknown status")
	}
	if appErr.Code != "payment_request_status_invalid" {
		t.Fatalf("expected payment_request_status_invalid, got %s", appErr.Code)
	}
}

func TestPendingTransitions(t *testing.T) {
	if !PaymentRequestStatusPending.CanTransitionTo(PaymentRequestStatusCompleted) {
		t.Fatalf("expected pending -> completed to be allowed")
	}
	if !PaymentRequestStatusPending.CanTransitionTo(PaymentRequestStatusFailed) {
		t.Fatalf("expected pending -> failed to be allowed")
	}
	if PaymentRequestStatusPending.CanTransitionTo(PaymentRequestStatusPending) {
		t.Fatalf("expected pending -> pending to be rejected")
	}
}

func TestTerminalStatusesAcceptNothing(t *testing.T) {
	terminals := []PaymentRequestStatus{PaymentRequestStatusCompleted, PaymentRequestStatusFailed}
	targets := []PaymentRequestStatus{PaymentRequestStatusPending, PaymentRequestStatusCompleted, PaymentRequestStatusFailed}

	for _, from := range terminals {
		if !from.IsTerminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range targets {
			if from.CanTransitionTo(to) {
				t.Fatalf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}
