// Package steps provides the step definitions for the feature suite. One
// server is started for the whole run against the shared in-memory database;
// every scenario begins with a clean database and a fresh request context.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/config"
	"github.com/campaign-tracker/backend/internal/infra/dependency"
	"github.com/campaign-tracker/backend/internal/integration/persistence/model"
	"github.com/campaign-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-the-feature-suite"

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db

	accessToken     string
	currentAdminID  uuid.UUID
	currentSeasonID uuid.UUID
	teamIDs         map[string]uuid.UUID
	entryIDs        map[string]uuid.UUID
	lastID          uuid.UUID
	nextBookNumber  int
}

type response struct {
	status int
	raw    []byte
	body   any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testServerPort int
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up suite-wide state before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers the step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"seasons":       &model.SeasonModel{},
			"teams":         &model.TeamModel{},
			"team_members":  &model.TeamMemberModel{},
			"receipt_books": &model.ReceiptBookModel{},
			"field_data":    &model.FieldDataModel{},
			"admins":        &model.AdminModel{},
		}, []string{"receipt_books", "team_members", "field_data", "teams", "admins", "seasons"}),
	}
	testDB = test.db

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		return c, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account and auth setup
	ctx.Given(`^an admin account exists with username "([^"]*)" and password "([^"]*)"$`, test.anAdminAccountExists)
	ctx.Given(`^a data collector account exists with username "([^"]*)" and password "([^"]*)"$`, test.aDataCollectorAccountExists)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the request is not authenticated$`, test.theRequestIsNotAuthenticated)

	// Season setup
	ctx.Given(`^an active season "([^"]*)" exists$`, test.anActiveSeasonExists)
	ctx.Given(`^the active season is locked$`, test.theActiveSeasonIsLocked)

	// Team setup
	ctx.Given(`^a team "([^"]*)" exists$`, test.aTeamExists)
	ctx.Given(`^a team "([^"]*)" exists with advance "([^"]*)"$`, test.aTeamExistsWithAdvance)
	ctx.Given(`^the team "([^"]*)" is assigned books (\d+) to (\d+)$`, test.theTeamIsAssignedBooks)
	ctx.Given(`^the team "([^"]*)" has entered book (\d+) with amount "([^"]*)"$`, test.theTeamHasEnteredBook)
	ctx.Given(`^the team "([^"]*)" is settled with collection "([^"]*)" and expense "([^"]*)"$`, test.theTeamIsSettled)

	// Survey setup
	ctx.Given(`^a survey entry exists for "([^"]*)" at "([^"]*)"$`, test.aSurveyEntryExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRows)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentAdminID = uuid.Nil
	t.currentSeasonID = uuid.Nil
	t.teamIDs = make(map[string]uuid.UUID)
	t.entryIDs = make(map[string]uuid.UUID)
	t.lastID = uuid.Nil
	// Books seeded by given-steps start high so they never collide with the
	// numbers scenarios use in requests.
	t.nextBookNumber = 100

	return t.db.Reset()
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		go func() {
			cfg := config.Load()
			cfg.JWT.Secret = testJWTSecret

			injector := dependency.NewInjector(cfg, testDB.Conn, func() bool {
				return testDB != nil && testDB.Conn != nil
			})
			engine := injector.Router.Setup(cfg.Server.Environment)

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not become ready on %s", t.uri)
}
