package certificado

import (
	"testing"
	"time"
)

func TestNewCodigoFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		codigo := NewCodigo()
		if len(codigo) != 12 {
			t.Fatalf("NewCodigo() = %q, want 12 chars", codigo)
		}
		for _, r := range codigo {
			if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
				t.Fatalf("NewCodigo() = %q, unexpected rune %q", codigo, r)
			}
		}
		if seen[codigo] {
			t.Fatalf("NewCodigo() repeated %q within 100 draws", codigo)
		}
		seen[codigo] = true
	}
}

func TestDeliveryJobRetryBudget(t *testing.T) {
	job := NewDeliveryJob("cert-1", CanalEmail, "ana@example.com")

	if job.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", job.MaxAttempts)
	}

	for i := 0; i < job.MaxAttempts; i++ {
		if !job.CanRetry() {
			t.Fatalf("CanRetry() = false after %d attempts, want true", i)
		}
		job.Attempts++
	}

	if job.CanRetry() {
		t.Error("CanRetry() = true after exhausting attempts")
	}
}

func TestDeliveryJobBackoffGrows(t *testing.T) {
	job := NewDeliveryJob("cert-1", CanalWhatsapp, "+573001112233")

	job.Attempts = 1
	first := job.NextDelay()
	job.Attempts = 2
	second := job.NextDelay()

	if first != 30*time.Second {
		t.Errorf("NextDelay() after first attempt = %v, want 30s", first)
	}
	if second <= first {
		t.Errorf("NextDelay() should grow: %v then %v", first, second)
	}
}

func TestMarkEntregado(t *testing.T) {
	cert := &Certificado{Estado: CertificadoEstadoEmitido}
	cert.MarkEntregado()

	if cert.Estado != CertificadoEstadoEntregado {
		t.Errorf("Estado = %q, want %q", cert.Estado, CertificadoEstadoEntregado)
	}
	if cert.EntregadoAt == nil {
		t.Error("EntregadoAt not set")
	}
}

func TestCanalIsValid(t *testing.T) {
	if !CanalEmail.IsValid() || !CanalWhatsapp.IsValid() {
		t.Error("known canales reported invalid")
	}
	if Canal("sms").IsValid() {
		t.Error("unknown canal reported valid")
	}
}
