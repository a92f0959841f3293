package order

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saveur_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

func putStatusRequest(t *testing.T, status string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/orders/ORD-12345678-ABCD",
		strings.NewReader(`{"status": "`+status+`"}`))
	c.Params = gin.Params{{Key: "id", Value: "ORD-12345678-ABCD"}}

	UpdateOrderStatus(c)
	return w
}

// Le vocabulaire workflow ("delivered", "ready"…) n'est pas accepté tel quel :
// seul le vocabulaire ledger passe, tout le reste est refusé en 400. Le refus
// intervient avant tout accès au stockage, le statut enregistré reste intact.
func TestUpdateOrderStatusRejectsNonLedgerVocabulary(t *testing.T) {
	for _, status := range []string{"delivered", "pending", "ready", "confirmed", "archived"} {
		w := putStatusRequest(t, status)

		if w.Code != http.StatusBadRequest {
			t.Errorf("statut %q: code = %d, attendu 400", status, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Statut invalide") {
			t.Errorf("statut %q: corps inattendu: %s", status, w.Body.String())
		}
		for _, valid := range models.LedgerStatuses {
			if !strings.Contains(w.Body.String(), valid) {
				t.Errorf("statut %q: la réponse n'énumère pas %q", status, valid)
			}
		}
	}
}
