package handlers

import (
	"context"
	"net/http"

	"oil_heating/internal/models"
	"oil_heating/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockCalculation struct {
	defaults models.Inputs
	out      service.CalculationOutcome
	err      error
	calls    int
	last     service.CalculationParams
}

func (m *mockCalculation) Defaults() models.Inputs { return m.defaults }

func (m *mockCalculation) Calculate(ctx context.Context, p service.CalculationParams) (service.CalculationOutcome, error) {
	m.calls++
	m.last = p
	return m.out, m.err
}

type mockRunLog struct {
	runs     []models.Run
	run      *models.Run
	err      error
	lastList service.RunFilter
	lastID   string
}

func (m *mockRunLog) List(ctx context.Context, f service.RunFilter) ([]models.Run, error) {
	m.lastList = f
	return m.runs, m.err
}

func (m *mockRunLog) Get(ctx context.Context, id string) (*models.Run, error) {
	m.lastID = id
	return m.run, m.err
}

// ---- Shared Test Helpers ----

// newServices returns real calculation and sweep services (no persistence)
// plus the given auth mock.
func newServices(auth service.Authorization) *service.Service {
	return &service.Service{
		Authorization: auth,
		Calculation:   service.NewCalculationService(nil, models.DefaultInputs()),
		Sweeper:       service.NewSweepService(nil, 100),
	}
}

func testOptions() Options {
	return Options{
		Range:  models.PowerRange{Start: 0, Stop: 2000, Step: 500},
		Policy: service.PolicyStop,
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, testOptions())
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withAuth(req *http.Request) *http.Request {
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
