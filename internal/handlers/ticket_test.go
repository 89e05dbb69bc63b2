package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/sprintboard/sprintboard/internal/constants"
	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/storage"
	"github.com/sprintboard/sprintboard/internal/store"
)

// memoryAdapter keeps the collection in memory; handler tests do not need
// durable persistence.
type memoryAdapter struct {
	collection storage.Collection
}

func (a *memoryAdapter) Load() (storage.Collection, error) {
	return a.collection, nil
}

func (a *memoryAdapter) Save(col storage.Collection) error {
	a.collection = col
	return nil
}

// TicketHandlerTestSuite defines the test suite for TicketHandler
type TicketHandlerTestSuite struct {
	suite.Suite
	store   *store.Store
	handler *TicketHandler
}

// SetupTest runs before each test
func (suite *TicketHandlerTestSuite) SetupTest() {
	adapter := &memoryAdapter{collection: storage.SeedCollection()}
	suite.store = store.New(adapter, store.OpaqueIDs)
	suite.handler = NewTicketHandler(suite.store)

	gin.SetMode(gin.TestMode)
}

// Helper function to create an authenticated context
func (suite *TicketHandlerTestSuite) createAuthContext(method, url string, body []byte, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

// TestListTickets_Success tests listing the full collection
func (suite *TicketHandlerTestSuite) TestListTickets_Success() {
	c, w := suite.createAuthContext("GET", "/api/tickets", nil, "1")

	suite.handler.ListTickets(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Tickets []models.Ticket `json:"tickets"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Tickets, len(storage.SeedTickets()))
}

// TestCreateTicket_Success tests creating a ticket as the session user
func (suite *TicketHandlerTestSuite) TestCreateTicket_Success() {
	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Fix login bug",
		"storyPoints": 3,
		"type":        "Bug",
	})
	c, w := suite.createAuthContext("POST", "/api/tickets", body, "u1")

	suite.handler.CreateTicket(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var ticket models.Ticket
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(suite.T(), "u1", ticket.CreatedBy)
	assert.Equal(suite.T(), models.TicketStatusToDo, ticket.Status)
	assert.Empty(suite.T(), ticket.SprintID)
}

// TestCreateTicket_Unauthorized tests creating without a session
func (suite *TicketHandlerTestSuite) TestCreateTicket_Unauthorized() {
	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Fix login bug",
		"storyPoints": 3,
		"type":        "Bug",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	suite.handler.CreateTicket(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestCreateTicket_InvalidStoryPoints tests validation mapping to 400
func (suite *TicketHandlerTestSuite) TestCreateTicket_InvalidStoryPoints() {
	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Fix login bug",
		"storyPoints": -1,
		"type":        "Bug",
	})
	c, w := suite.createAuthContext("POST", "/api/tickets", body, "u1")

	suite.handler.CreateTicket(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateTicket_IgnoresImmutableFields tests that createdBy survives
// whatever the payload contains
func (suite *TicketHandlerTestSuite) TestUpdateTicket_IgnoresImmutableFields() {
	existing := suite.store.Tickets()[0]

	body, _ := json.Marshal(map[string]interface{}{
		"title":     "renamed",
		"id":        "hijacked",
		"createdBy": "someone-else",
	})
	c, w := suite.createAuthContext("PATCH", "/api/tickets/"+existing.ID, body, "u1")
	c.Params = gin.Params{{Key: "id", Value: existing.ID}}

	suite.handler.UpdateTicket(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var ticket models.Ticket
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(suite.T(), "renamed", ticket.Title)
	assert.Equal(suite.T(), existing.ID, ticket.ID)
	assert.Equal(suite.T(), existing.CreatedBy, ticket.CreatedBy)
}

// TestUpdateTicket_NotFound tests the 404 mapping
func (suite *TicketHandlerTestSuite) TestUpdateTicket_NotFound() {
	body, _ := json.Marshal(map[string]interface{}{"title": "renamed"})
	c, w := suite.createAuthContext("PATCH", "/api/tickets/missing", body, "u1")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.UpdateTicket(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestMoveTicket tests sprint assignment and the backlog round trip
func (suite *TicketHandlerTestSuite) TestMoveTicket() {
	sprint := suite.store.Sprints()[0]
	backlog := suite.store.Tickets()[1] // seed ticket 2 has no sprint

	body, _ := json.Marshal(map[string]string{"sprintId": sprint.ID})
	c, w := suite.createAuthContext("POST", "/api/tickets/"+backlog.ID+"/move", body, "u1")
	c.Params = gin.Params{{Key: "id", Value: backlog.ID}}

	suite.handler.MoveTicket(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var ticket models.Ticket
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(suite.T(), sprint.ID, ticket.SprintID)
}

// TestMoveTicket_UnknownSprint tests that unknown sprint ids are rejected
func (suite *TicketHandlerTestSuite) TestMoveTicket_UnknownSprint() {
	backlog := suite.store.Tickets()[1]

	body, _ := json.Marshal(map[string]string{"sprintId": "missing"})
	c, w := suite.createAuthContext("POST", "/api/tickets/"+backlog.ID+"/move", body, "u1")
	c.Params = gin.Params{{Key: "id", Value: backlog.ID}}

	suite.handler.MoveTicket(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteTicket tests removal
func (suite *TicketHandlerTestSuite) TestDeleteTicket() {
	existing := suite.store.Tickets()[0]

	c, w := suite.createAuthContext("DELETE", "/api/tickets/"+existing.ID, nil, "u1")
	c.Params = gin.Params{{Key: "id", Value: existing.ID}}

	suite.handler.DeleteTicket(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Len(suite.T(), suite.store.Tickets(), len(storage.SeedTickets())-1)
}

func TestTicketHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}
