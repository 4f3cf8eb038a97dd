package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/campaign-tracker/backend/internal/domain/entity"
	"github.com/campaign-tracker/backend/internal/domain/valueobject"
	"github.com/campaign-tracker/backend/internal/integration/persistence"
	"github.com/campaign-tracker/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

// Account and auth setup

func (t *testContext) anAdminAccountExists(username, password string) error {
	return t.createAccount(username, password, entity.RoleAdmin)
}

func (t *testContext) aDataCollectorAccountExists(username, password string) error {
	return t.createAccount(username, password, entity.RoleDataCollector)
}

func (t *testContext) createAccount(username, password string, role entity.AdminRole) error {
	now := time.Now().UTC()
	account := &model.AdminModel{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashPassword(password),
		DisplayName:  "Test Account",
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.Conn.Create(account).Error
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashed)
}

func (t *testContext) iAmLoggedInAs(username, password string) error {
	payload := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", t.response.status, string(t.response.raw))
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return errors.New("login response is not a JSON object")
	}
	token, _ := body["token"].(string)
	if token == "" {
		return errors.New("login response carried no token")
	}
	t.accessToken = token

	if admin, ok := body["admin"].(map[string]any); ok {
		if idStr, ok := admin["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentAdminID = id
			}
		}
	}
	return nil
}

func (t *testContext) theRequestIsNotAuthenticated() error {
	t.accessToken = ""
	t.headers = make(map[string]string)
	return nil
}

// Season setup

func (t *testContext) anActiveSeasonExists(name string) error {
	now := time.Now().UTC()
	season := &model.SeasonModel{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.Conn.Create(season).Error; err != nil {
		return err
	}
	t.currentSeasonID = season.ID
	return nil
}

func (t *testContext) theActiveSeasonIsLocked() error {
	if t.currentSeasonID == uuid.Nil {
		return errors.New("no season was set up")
	}
	return t.db.Conn.Model(&model.SeasonModel{}).
		Where("id = ?", t.currentSeasonID).
		Update("is_locked", true).Error
}

// Team setup

func (t *testContext) aTeamExists(place string) error {
	return t.aTeamExistsWithAdvance(place, "0")
}

func (t *testContext) aTeamExistsWithAdvance(place, advance string) error {
	if t.currentSeasonID == uuid.Nil {
		return errors.New("no season was set up")
	}
	amount, err := decimal.NewFromString(advance)
	if err != nil {
		return fmt.Errorf("invalid advance %q: %w", advance, err)
	}

	team := entity.NewTeam(place, "Kerala", t.currentSeasonID, []entity.TeamMember{
		{Name: "Anas", Class: "10", Phone: "9000000001"},
		{Name: "Basheer", Class: "9", Phone: "9000000002"},
	}, amount)
	if err := persistence.NewTeamRepository(t.db.Conn).Create(context.Background(), team); err != nil {
		return err
	}
	t.teamIDs[place] = team.ID
	return nil
}

func (t *testContext) theTeamIsAssignedBooks(place string, from, to int) error {
	repo := persistence.NewTeamRepository(t.db.Conn)
	team, err := repo.FindByID(context.Background(), t.teamIDs[place])
	if err != nil {
		return err
	}

	var books []entity.ReceiptBook
	for n := from; n <= to; n++ {
		pages, err := valueobject.NewReceiptBookRange(n)
		if err != nil {
			return err
		}
		books = append(books, entity.ReceiptBook{
			BookNumber: n,
			StartPage:  pages.StartPage,
			EndPage:    pages.EndPage,
		})
	}
	team.ReceiptBooks = books
	team.RecomputeTotals()
	return repo.Update(context.Background(), team)
}

func (t *testContext) theTeamHasEnteredBook(place string, bookNumber int, amount string) error {
	repo := persistence.NewTeamRepository(t.db.Conn)
	team, err := repo.FindByID(context.Background(), t.teamIDs[place])
	if err != nil {
		return err
	}
	collected, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	pages, err := valueobject.NewReceiptBookRange(bookNumber)
	if err != nil {
		return err
	}

	team.ReceiptBooks = append(team.ReceiptBooks, entity.ReceiptBook{
		BookNumber:      bookNumber,
		StartPage:       pages.StartPage,
		EndPage:         pages.EndPage,
		CollectedAmount: collected,
		IsEntered:       true,
	})
	team.RecomputeTotals()
	return repo.Update(context.Background(), team)
}

func (t *testContext) theTeamIsSettled(place, collection, expense string) error {
	repo := persistence.NewTeamRepository(t.db.Conn)
	team, err := repo.FindByID(context.Background(), t.teamIDs[place])
	if err != nil {
		return err
	}
	collected, err := decimal.NewFromString(collection)
	if err != nil {
		return fmt.Errorf("invalid collection %q: %w", collection, err)
	}
	spent, err := decimal.NewFromString(expense)
	if err != nil {
		return fmt.Errorf("invalid expense %q: %w", expense, err)
	}

	bookNumber := t.nextBookNumber
	t.nextBookNumber++
	pages, err := valueobject.NewReceiptBookRange(bookNumber)
	if err != nil {
		return err
	}

	team.ReceiptBooks = append(team.ReceiptBooks, entity.ReceiptBook{
		BookNumber:      bookNumber,
		StartPage:       pages.StartPage,
		EndPage:         pages.EndPage,
		CollectedAmount: collected,
		IsEntered:       true,
	})
	team.CashAmount = collected
	team.RecomputeTotals()
	team.Finalize(spent)
	return repo.Update(context.Background(), team)
}

// Survey setup

func (t *testContext) aSurveyEntryExists(masjidName, place string) error {
	if t.currentSeasonID == uuid.Nil {
		return errors.New("no season was set up")
	}
	createdBy := t.currentAdminID
	if createdBy == uuid.Nil {
		createdBy = uuid.New()
	}

	entry := entity.NewFieldData(
		masjidName, place,
		entity.FieldLocation{Address: "Main Road"},
		entity.FieldContact{Name: "Iqbal", Designation: "Secretary", Phone: "9000000009"},
		"", nil, "",
		t.currentSeasonID, createdBy,
	)
	if err := persistence.NewFieldDataRepository(t.db.Conn).Create(context.Background(), entry); err != nil {
		return err
	}
	t.entryIDs[place] = entry.ID
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{season_id}}", t.currentSeasonID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	for place, id := range t.teamIDs {
		content = strings.ReplaceAll(content, "{{team:"+place+"}}", id.String())
	}
	for place, id := range t.entryIDs {
		content = strings.ReplaceAll(content, "{{entry:"+place+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = parsed

	// Remember created resources so later requests can reference them.
	if idStr, ok := parsed["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
			if place, ok := parsed["placeName"].(string); ok {
				t.teamIDs[place] = id
			}
			if place, ok := parsed["place"].(string); ok {
				t.entryIDs[place] = id
			}
		}
	}
	return nil
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field %q has %d items, want %d", field, len(items), count)
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return nil, fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}
	return value, nil
}

// getFieldValue resolves a dot-separated path, with numeric segments indexing
// into lists.
func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}
		if index, err := strconv.Atoi(segment); err == nil {
			list, ok := field.([]any)
			if !ok || index >= len(list) {
				return nil
			}
			field = list[index]
			continue
		}
		object, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = object[segment]
	}
	return field
}

// Database assertion steps

func (t *testContext) theDbShouldContainRows(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.Conn.Unscoped().Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d rows in %q, got %d", quantity, table, count)
	}
	return nil
}
