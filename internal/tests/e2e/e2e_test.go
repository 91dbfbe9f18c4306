package e2e

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/router"
	"github.com/DanielPopoola/payment-records/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type E2ETestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDatabase
	server *httptest.Server
	client *TestClient
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())

	logger := testhelpers.Logger()
	repo := postgres.NewPaymentRepository(suite.testDB.DB)
	svc := services.NewPaymentService(repo, logger)
	h := router.New(handlers.NewPaymentHandler(svc, logger), router.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: 5 * time.Second,
		Readiness:      suite.testDB.DB.Ready,
	}, logger)

	suite.server = httptest.NewServer(h)
	suite.client = NewTestClient(suite.server.URL)
}

func (suite *E2ETestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	suite.testDB.Cleanup(suite.T())
}

func (suite *E2ETestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

type paymentBody struct {
	ID        int64   `json:"id,omitempty"`
	Reference string  `json:"reference"`
	Quantity  float64 `json:"quantity"`
	Sender    *string `json:"sender,omitempty"`
	Receiver  *string `json:"receiver,omitempty"`
}

func strPtr(s string) *string { return &s }

// ============================================================================
// LIFECYCLE: create -> lookup -> duplicate -> delete -> invalid update
// ============================================================================

func (suite *E2ETestSuite) TestLifecycle() {
	t := suite.T()

	created := suite.client.Create(t, paymentBody{
		Reference: "R1",
		Quantity:  100,
		Sender:    strPtr("A"),
		Receiver:  strPtr("B"),
	})
	require.Equal(t, http.StatusCreated, created.Status)
	require.NotNil(t, created.Payment)
	assert.Greater(t, created.Payment.ID, int64(0))
	assert.Equal(t, "R1", created.Payment.Reference)
	id := created.Payment.ID

	byRef := suite.client.GetByReference(t, "R1")
	require.Equal(t, http.StatusOK, byRef.Status)
	assert.Equal(t, created.Payment, byRef.Payment)

	dup := suite.client.Create(t, paymentBody{Reference: "R1", Quantity: 50})
	assert.Equal(t, http.StatusConflict, dup.Status)
	require.NotNil(t, dup.Error)
	assert.Equal(t, domain.ErrCodeDuplicateReference, dup.Error.Code)

	deleted := suite.client.Delete(t, id)
	assert.Equal(t, http.StatusOK, deleted.Status)

	list := suite.client.List(t)
	require.Equal(t, http.StatusOK, list.Status)
	for _, p := range list.Payments {
		assert.NotEqual(t, id, p.ID)
	}

	afterDelete := suite.client.Get(t, id)
	require.Equal(t, http.StatusOK, afterDelete.Status)
	assert.True(t, afterDelete.Payment.IsDeleted)

	invalid := suite.client.Update(t, id, paymentBody{ID: id, Reference: "", Quantity: 10})
	assert.Equal(t, http.StatusBadRequest, invalid.Status)
	require.NotNil(t, invalid.Error)
	assert.Equal(t, application.ErrCodeValidationFailed, invalid.Error.Code)
}

func (suite *E2ETestSuite) TestCreate_LocationHeader() {
	t := suite.T()

	created := suite.client.Create(t, paymentBody{Reference: testhelpers.UniqueReference(), Quantity: 1})
	require.Equal(t, http.StatusCreated, created.Status)

	location := created.Header.Get("Location")
	require.NotEmpty(t, location)

	resp, err := http.Get(suite.server.URL + location)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func (suite *E2ETestSuite) TestDuplicateOfDeletedReference() {
	t := suite.T()
	ref := testhelpers.UniqueReference()

	created := suite.client.Create(t, paymentBody{Reference: ref, Quantity: 1})
	require.Equal(t, http.StatusCreated, created.Status)
	require.Equal(t, http.StatusOK, suite.client.Delete(t, created.Payment.ID).Status)

	assert.Equal(t, http.StatusNotFound, suite.client.GetByReference(t, ref).Status)
	assert.Equal(t, http.StatusConflict, suite.client.Create(t, paymentBody{Reference: ref, Quantity: 1}).Status)
}

func (suite *E2ETestSuite) TestUpdate() {
	t := suite.T()

	created := suite.client.Create(t, paymentBody{Reference: testhelpers.UniqueReference(), Quantity: 1, Sender: strPtr("A")})
	require.Equal(t, http.StatusCreated, created.Status)
	id := created.Payment.ID

	updated := suite.client.Update(t, id, paymentBody{ID: id, Reference: created.Payment.Reference, Quantity: -4})
	require.Equal(t, http.StatusOK, updated.Status)
	assert.Equal(t, -4.0, updated.Payment.Quantity)

	fetched := suite.client.Get(t, id)
	require.Equal(t, http.StatusOK, fetched.Status)
	assert.Equal(t, -4.0, fetched.Payment.Quantity)
	assert.Nil(t, fetched.Payment.Sender)

	mismatch := suite.client.Update(t, id, paymentBody{ID: id + 1, Reference: "X", Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, mismatch.Status)

	missing := suite.client.Update(t, id+100, paymentBody{ID: id + 100, Reference: "X", Quantity: 1})
	assert.Equal(t, http.StatusNotFound, missing.Status)

	list := suite.client.List(t)
	require.Len(t, list.Payments, 1)
	assert.Equal(t, created.Payment.Reference, list.Payments[0].Reference)
}

func (suite *E2ETestSuite) TestNotFound() {
	t := suite.T()

	assert.Equal(t, http.StatusNotFound, suite.client.Get(t, 424242).Status)
	assert.Equal(t, http.StatusNotFound, suite.client.Delete(t, 424242).Status)
	assert.Equal(t, http.StatusNotFound, suite.client.GetByReference(t, "nope").Status)
}

func (suite *E2ETestSuite) TestHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, suite.server.URL+"/health", nil)
	require.NoError(suite.T(), err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(suite.T(), err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
}
