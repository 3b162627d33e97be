package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"notification-hub/auth"
	"notification-hub/domain"
	"notification-hub/domain/event"

	"github.com/coder/websocket"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

const stepTimeout = 5 * time.Second

type BaseSuite struct {
	suite.Suite
	Config Config
	tokens *auth.TokenManager
}

// SetupSuite loads the environment configuration and skips the suite when
// no notifier is reachable.
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.NotifierAddr == "" {
		s.T().Skip("NOTIFIER_ADDR is not set")
	}
	s.tokens = auth.NewTokenManager(s.Config.JWTSecret, time.Hour)
}

// Step prints a colorized header for a scenario step.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *BaseSuite) Token(userID domain.UserID, roles ...domain.Role) string {
	token, err := s.tokens.GenerateToken(userID, roles)
	s.Require().NoError(err)
	return token
}

// Client is a websocket connection to the notifier.
type Client struct {
	s    *BaseSuite
	conn *websocket.Conn
}

func (s *BaseSuite) Connect(token string) *Client {
	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()
	url := fmt.Sprintf("ws://%s/notifications?token=%s", s.Config.NotifierAddr, token)
	conn, _, err := websocket.Dial(ctx, url, nil)
	s.Require().NoError(err, "Failed to connect to notifier at "+s.Config.NotifierAddr)
	client := &Client{s: s, conn: conn}
	s.T().Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return client
}

func (c *Client) Send(name event.Name, data any) {
	frame, err := event.Encode(name, data)
	c.s.Require().NoError(err)
	c.s.debug("SEND", frame)
	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()
	c.s.Require().NoError(c.conn.Write(ctx, websocket.MessageText, frame))
}

// Expect reads frames until one named name arrives and decodes its data into dst.
func (c *Client) Expect(name event.Name, dst any) {
	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()
	for {
		_, frame, err := c.conn.Read(ctx)
		c.s.Require().NoError(err, "waiting for "+string(name))
		c.s.debug("RECV", frame)
		env, err := event.Decode(frame)
		c.s.Require().NoError(err)
		if env.Event != name {
			continue
		}
		if dst != nil {
			c.s.Require().NoError(json.Unmarshal(env.Data, dst))
		}
		return
	}
}

// Call sends a JSON request to the REST API and decodes the response into dst.
func (s *BaseSuite) Call(method, path, token string, body, dst any) int {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		s.debug("REQUEST "+method+" "+path, raw)
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s/api/v1%s", s.Config.NotifierAddr, path), payload)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := (&http.Client{Timeout: stepTimeout}).Do(req)
	s.Require().NoError(err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.debug(fmt.Sprintf("RESPONSE %d", res.StatusCode), raw)
	if dst != nil && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, dst))
	}
	return res.StatusCode
}

func (s *BaseSuite) debug(label string, raw []byte) {
	if s.Config.DebugJSON {
		s.T().Logf("%s\n%s", label, raw)
	}
}
