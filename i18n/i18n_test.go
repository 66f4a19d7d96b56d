package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en_US.UTF-8") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("vi_VN") != "vi" {
		t.Fatalf("expected vi")
	}
	if DetectLanguage("") != "vi" {
		t.Fatalf("expected default vi")
	}
	if DetectLanguage("fr_FR") != "vi" {
		t.Fatalf("expected vi fallback for unsupported locale")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "cart_empty") != "Cart is empty!" {
		t.Fatalf("unexpected en translation")
	}
	if T("vi", "cart_empty") != "Giỏ hàng trống!" {
		t.Fatalf("unexpected vi translation")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to vi translation if exists
	if T("fr", "cart_empty") != "Giỏ hàng trống!" {
		t.Fatalf("expected vi fallback for fr lang")
	}
}

func TestTf(t *testing.T) {
	if Tf("en", "order_success", "DH-001") != "Order created! Code: DH-001" {
		t.Fatalf("unexpected formatted message")
	}
}
