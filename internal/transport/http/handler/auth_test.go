package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/transport/http/handler"
	"github.com/ErlanBelekov/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	signup func(ctx context.Context, input usecase.SignupInput) (*domain.User, error)
	login  func(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, input usecase.SignupInput) (*domain.User, error) {
	return f.signup(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	return f.login(ctx, email, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(uc, testLogger)

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type fieldErrorsBody struct {
	Error []handler.FieldError `json:"error"`
}

type messageBody struct {
	Error string `json:"error"`
}

const validSignup = `{"email":"Ada@Example.com","password":"s3cret","firstname":"Ada",` +
	`"lastname":"Lovelace","role":"company","country":"UK"}`

// ---- Signup ----

func TestSignup_Success_Returns201WithoutHash(t *testing.T) {
	var got usecase.SignupInput
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, in usecase.SignupInput) (*domain.User, error) {
			got = in
			return &domain.User{
				ID:           "user-1",
				Email:        "ada@example.com",
				PasswordHash: domain.PasswordHash("$2a$12$hash"),
				FirstName:    in.FirstName,
				LastName:     in.LastName,
				Role:         in.Role,
				Country:      in.Country,
				CreatedAt:    time.Now(),
			}, nil
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignup)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if got.Role != domain.RoleCompany || got.Password != "s3cret" {
		t.Errorf("usecase got %+v", got)
	}

	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Data["id"] != "user-1" || body.Data["firstname"] != "Ada" {
		t.Errorf("data = %v", body.Data)
	}
	if strings.Contains(w.Body.String(), "hash") || strings.Contains(w.Body.String(), "s3cret") {
		t.Errorf("response leaks credentials: %s", w.Body.String())
	}
}

func TestSignup_EmptyBody_ListsEveryField(t *testing.T) {
	uc := &fakeAuthUsecase{}

	w := postJSON(newAuthEngine(uc), "/auth/signup", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body fieldErrorsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	want := []string{"email", "password", "firstname", "lastname", "role", "country"}
	if len(body.Error) != len(want) {
		t.Fatalf("got %d field errors, want %d: %+v", len(body.Error), len(want), body.Error)
	}
	for i, field := range want {
		if body.Error[i].Field != field {
			t.Errorf("error[%d].field = %q, want %q", i, body.Error[i].Field, field)
		}
		if body.Error[i].Message != "This field is required" {
			t.Errorf("error[%d].message = %q", i, body.Error[i].Message)
		}
	}
}

func TestSignup_InvalidEmailAndRole_ReportsBoth(t *testing.T) {
	uc := &fakeAuthUsecase{}

	w := postJSON(newAuthEngine(uc), "/auth/signup",
		`{"email":"nope","password":"p","firstname":"A","lastname":"B","role":"admin","country":"KZ"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body fieldErrorsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Error) != 2 {
		t.Fatalf("got %d field errors, want 2: %+v", len(body.Error), body.Error)
	}
	if body.Error[0].Field != "email" || body.Error[0].Message != "Must be a valid email address" {
		t.Errorf("error[0] = %+v", body.Error[0])
	}
	if body.Error[1].Field != "role" || body.Error[1].Message != "Must be one of: company, job_seeker" {
		t.Errorf("error[1] = %+v", body.Error[1])
	}
}

func TestSignup_PasswordTooLong_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}
	long := strings.Repeat("x", 73)

	w := postJSON(newAuthEngine(uc), "/auth/signup", fmt.Sprintf(
		`{"email":"a@b.co","password":%q,"firstname":"A","lastname":"B","role":"company","country":"KZ"}`, long))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"field":"password"`) {
		t.Errorf("body %s does not name password", w.Body.String())
	}
}

func TestSignup_MalformedJSON_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}

	w := postJSON(newAuthEngine(uc), "/auth/signup", `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignup)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body messageBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Email already exists" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestSignup_StoreUnavailable_Returns503(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, fmt.Errorf("create user: %w", domain.ErrStoreUnavailable)
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignup)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestSignup_UnexpectedError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, errors.New("boom")
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignup)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- Login ----

func TestLogin_Success_Returns200WithToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, password string) (*usecase.LoginResult, error) {
			if email != "ada@example.com" || password != "s3cret" {
				t.Errorf("login called with %q/%q", email, password)
			}
			return &usecase.LoginResult{
				Token: "header.payload.signature",
				User:  &domain.User{ID: "user-1", Email: email},
			}, nil
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/login", `{"email":"ada@example.com","password":"s3cret"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			Email string `json:"email"`
			ID    string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Data.Token != "header.payload.signature" || body.Data.ID != "user-1" ||
		body.Data.Email != "ada@example.com" {
		t.Errorf("body = %+v", body)
	}
}

func TestLogin_MissingFields_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}

	w := postJSON(newAuthEngine(uc), "/auth/login", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body fieldErrorsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Error) != 2 {
		t.Errorf("got %d field errors, want 2: %+v", len(body.Error), body.Error)
	}
}

func TestLogin_InvalidCredentials_IdenticalResponses(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, _ string) (*usecase.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	r := newAuthEngine(uc)

	unknown := postJSON(r, "/auth/login", `{"email":"ghost@example.com","password":"x"}`)
	wrong := postJSON(r, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	if unknown.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", unknown.Code)
	}
	if unknown.Code != wrong.Code || unknown.Body.String() != wrong.Body.String() {
		t.Errorf("responses differ: %d %s vs %d %s",
			unknown.Code, unknown.Body.String(), wrong.Code, wrong.Body.String())
	}
}

func TestLogin_StoreUnavailable_Returns503(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (*usecase.LoginResult, error) {
			return nil, fmt.Errorf("find user: %w", domain.ErrStoreUnavailable)
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/login", `{"email":"ada@example.com","password":"x"}`)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestSignup_MultiBytePasswordOverByteLimit_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}
	// 40 runes, 80 bytes
	password := strings.Repeat("é", 40)

	w := postJSON(newAuthEngine(uc), "/auth/signup", fmt.Sprintf(
		`{"email":"a@b.co","password":%q,"firstname":"A","lastname":"B","role":"company","country":"KZ"}`, password))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body fieldErrorsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Error) != 1 || body.Error[0].Field != "password" ||
		body.Error[0].Message != "Must be at most 72 bytes long" {
		t.Errorf("errors = %+v", body.Error)
	}
}

func TestSignup_PasswordTooLongFromUsecase_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, fmt.Errorf("hash password: %w", domain.ErrPasswordTooLong)
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignup)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"field":"password"`) {
		t.Errorf("body %s does not name password", w.Body.String())
	}
}

func TestSignup_BlankNames_ListsEachField(t *testing.T) {
	uc := &fakeAuthUsecase{}

	w := postJSON(newAuthEngine(uc), "/auth/signup",
		`{"email":"a@b.co","password":"p","firstname":"   ","lastname":" ","role":"company","country":"\t"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body fieldErrorsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := []string{"firstname", "lastname", "country"}
	if len(body.Error) != len(want) {
		t.Fatalf("got %d field errors, want %d: %+v", len(body.Error), len(want), body.Error)
	}
	for i, field := range want {
		if body.Error[i].Field != field || body.Error[i].Message != "Must not be blank" {
			t.Errorf("error[%d] = %+v, want %s blank", i, body.Error[i], field)
		}
	}
}

func TestSignup_ClientGone_NoErrorBody(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, fmt.Errorf("find user: %w", context.Canceled)
		},
	}

	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignup)

	if w.Code != 499 {
		t.Errorf("status = %d, want 499", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %s, want empty", w.Body.String())
	}
}
