package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "woolabels/internal/adapters/in/http"
	"woolabels/internal/core/application/usecases/queries"
	"woolabels/internal/core/domain/model/order"
	"woolabels/internal/core/domain/model/product"
	"woolabels/internal/core/domain/services"
	"woolabels/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportData = `"Order ID","Order Date","Order Status","Customer Name","Order Total","Order Shipping","Payment Gateway","Shipping Method","Shipping Address Line 1","Shipping Address Line 2","Shipping Zip/Postcode","Billing Phone Number",_transaction_id,"Product Name","Quantity of items purchased","Item price EXCL. tax"
5358,2020/05/24,processing,"PERINO LUPO","57,10",5,"PayPal o carta di credito",flat_rate:1,"VIA DEI PAZZI 0","SCALA A DESTRA SECONDO PIANO",20146,3355700000,0P128552W4082524Y,"Mozzarella BIO 350 gr",1,40
5357,2020/05/24,processing,"Maria Luisa","30",0,"PayPal o carta di credito",flat_rate:1,"Via Da Qui 1",,20129,3332750000,5L1092726H247623G,"INSALATA VARIA 500 g",1,1.4
`

const catalogData = `Progressivo;Categoria;Provenienza;Preincartato al KG;Tipo Articolo;Codice di partenza;Prodotto;Prezzo;Unita;Iva;Reparto fiscale;Codice PLU Olivetti;12 caratteri EAN;EAN 13 proprio;EAN 13 fornitore
1;FORMAGGI;agricolo;0;5;50001;Mozzarella BIO 350 gr;4,50;pezzo;4%;1;50001;;;2130001004009
`

func newServer(t *testing.T, eans ports.EANProvider) *httpadapter.Server {
	t.Helper()

	assembler := services.NewLabelAssembler(order.DefaultThresholds())
	return httpadapter.NewServer(
		queries.NewBuildLabelsQueryHandler(assembler),
		queries.NewBuildSummaryQueryHandler(),
		eans,
	)
}

func doRequest(t *testing.T, server *httpadapter.Server, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_BuildLabels(t *testing.T) {
	t.Run("should build labels from a raw export body", func(t *testing.T) {
		rec := doRequest(t, newServer(t, nil), "/api/v1/labels", exportData)

		require.Equal(t, http.StatusOK, rec.Code)

		var response httpadapter.LabelsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEmpty(t, response.BatchID)
		assert.Equal(t, 2, response.Deliveries)
		require.Len(t, response.Orders, 2)

		first := response.Orders[0]
		assert.Equal(t, uint32(5358), first.OrderID)
		assert.Equal(t, "PERINO LUPO", first.CustomerName)
		assert.Equal(t, "57,10", first.Total)
		assert.Equal(t, "5 €", first.Delivery)
		require.Len(t, first.Packages, 1)
		require.Len(t, first.Packages[0].Items, 1)
		assert.Equal(t, "", first.Packages[0].Items[0].EAN)

		second := response.Orders[1]
		assert.Equal(t, "local pick up", second.Delivery)
	})

	t.Run("should render the delivery details of the last package", func(t *testing.T) {
		rec := doRequest(t, newServer(t, nil), "/api/v1/labels", exportData)

		require.Equal(t, http.StatusOK, rec.Code)

		var response httpadapter.LabelsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		details := response.Orders[0].Packages[0].DeliveryDetails
		require.Len(t, details, 3)
		assert.Equal(t, httpadapter.DeliveryDetail{Name: "Consegna", Data: "5 €"}, details[0])
		assert.Equal(t, httpadapter.DeliveryDetail{Name: "Pagamento", Data: "PayPal o carta di credito"}, details[1])
		assert.Equal(t, httpadapter.DeliveryDetail{Name: "Totale", Data: "57,10€"}, details[2])
	})

	t.Run("should resolve barcodes when a catalog is wired", func(t *testing.T) {
		catalog, err := product.ParseCatalog(catalogData)
		require.NoError(t, err)

		rec := doRequest(t, newServer(t, catalog), "/api/v1/labels", exportData)

		require.Equal(t, http.StatusOK, rec.Code)

		var response httpadapter.LabelsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "2130001004009", response.Orders[0].Packages[0].Items[0].EAN)
		assert.Equal(t, "", response.Orders[1].Packages[0].Items[0].EAN)
	})

	t.Run("should honor the multipack query parameter", func(t *testing.T) {
		body := "header\n" +
			`1,2020/05/24,processing,"A","57,90",0,gw,fr,a1,a2,20146,333,tx,"P1",1,4` + "\n" +
			`1,2020/05/24,processing,"A","57,90",0,gw,fr,a1,a2,20146,333,tx,"P2",1,4` + "\n"

		split := doRequest(t, newServer(t, nil), "/api/v1/labels", body)
		require.Equal(t, http.StatusOK, split.Code)
		var splitResponse httpadapter.LabelsResponse
		require.NoError(t, json.Unmarshal(split.Body.Bytes(), &splitResponse))
		assert.Len(t, splitResponse.Orders[0].Packages, 2)

		single := doRequest(t, newServer(t, nil), "/api/v1/labels?multipack=false", body)
		require.Equal(t, http.StatusOK, single.Code)
		var singleResponse httpadapter.LabelsResponse
		require.NoError(t, json.Unmarshal(single.Body.Bytes(), &singleResponse))
		assert.Len(t, singleResponse.Orders[0].Packages, 1)
	})

	t.Run("should answer an empty body with zero deliveries", func(t *testing.T) {
		rec := doRequest(t, newServer(t, nil), "/api/v1/labels", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var response httpadapter.LabelsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Deliveries)
		assert.Empty(t, response.Orders)
	})

	t.Run("should answer a malformed export with 422", func(t *testing.T) {
		rec := doRequest(t, newServer(t, nil), "/api/v1/labels", "header\nnot,enough,columns\n")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var response httpadapter.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, http.StatusUnprocessableEntity, response.Code)
		assert.Contains(t, response.Message, "row is not parsable")
	})
}

func TestServer_BuildSummary(t *testing.T) {
	t.Run("should summarize products across orders", func(t *testing.T) {
		rec := doRequest(t, newServer(t, nil), "/api/v1/summary", exportData)

		require.Equal(t, http.StatusOK, rec.Code)

		var response httpadapter.SummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEmpty(t, response.BatchID)
		require.Len(t, response.Entries, 2)
		assert.Equal(t, "INSALATA VARIA 500 g", response.Entries[0].ProductName)
		assert.Equal(t, uint32(1), response.Entries[0].Count)
	})

	t.Run("should answer a malformed export with 422", func(t *testing.T) {
		rec := doRequest(t, newServer(t, nil), "/api/v1/summary", "header\nbad row\n")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
