package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/handler"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/validate"

	"github.com/gofiber/fiber/v2"
)

type testEnv struct {
	app   *fiber.App
	token string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := database.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	hash, err := helper.HashPassword("secreto123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := model.Account{Username: "admin", Password: hash, Active: true, Role: constants.ROLE_ADMIN}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	token, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: admin.ID, Username: admin.Username, Role: admin.Role})
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app)
	return &testEnv{app: app, token: token}
}

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

// fieldErrors devuelve los errores por campo de una respuesta de validación
func (r apiResponse) fieldErrors() map[string]string {
	out := map[string]string{}
	_ = json.Unmarshal(r.Errors, &out)
	return out
}

func (e *testEnv) do(t *testing.T, method, path string, body any, auth bool) (int, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "image/png" {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, out
}

// bearer hace la petición con un token distinto al del administrador
func (e *testEnv) bearer(t *testing.T, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return v
}

func hotelBody(suffix string) fiber.Map {
	return fiber.Map{
		"nombre":    "Hotel " + suffix,
		"direccion": "Avenida " + suffix + " 10",
		"telefono":  "+34 600 " + suffix,
		"email":     "hotel" + suffix + "@example.com",
		"sitioWeb":  "https://" + suffix + ".example.com",
	}
}

func (e *testEnv) createHotel(t *testing.T, suffix string) model.Hotel {
	t.Helper()
	status, res := e.do(t, http.MethodPost, "/api/hotel/", hotelBody(suffix), true)
	if status != http.StatusCreated {
		t.Fatalf("create hotel: status %d, %+v", status, res)
	}
	return decode[model.Hotel](t, res.Data)
}

func (e *testEnv) createRoom(t *testing.T, hotelID uint, number string, roomType model.RoomType) model.Room {
	t.Helper()
	status, res := e.do(t, http.MethodPost, "/api/habitacion/", fiber.Map{
		"numero": number, "tipo": roomType, "precioNoche": 40.5, "hotel_id": hotelID,
	}, true)
	if status != http.StatusCreated {
		t.Fatalf("create room: status %d, %+v", status, res)
	}
	return decode[model.Room](t, res.Data)
}

func (e *testEnv) createGuest(t *testing.T, document string) model.Guest {
	t.Helper()
	status, res := e.do(t, http.MethodPost, "/api/huesped/", fiber.Map{
		"nombre": "Ana", "apellido": "Ruiz", "dniPasaporte": document,
	}, true)
	if status != http.StatusCreated {
		t.Fatalf("create guest: status %d, %+v", status, res)
	}
	return decode[model.Guest](t, res.Data)
}

func TestHotelCRUD(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Sol")
	if hotel.Slug != "hotel-sol" {
		t.Fatalf("unexpected slug %q", hotel.Slug)
	}

	status, res := env.do(t, http.MethodGet, fmt.Sprintf("/api/hotel/%d", hotel.ID), nil, false)
	if status != http.StatusOK {
		t.Fatalf("get hotel: status %d", status)
	}
	if got := decode[model.Hotel](t, res.Data); got.Name != "Hotel Sol" {
		t.Fatalf("unexpected hotel %+v", got)
	}

	status, res = env.do(t, http.MethodPut, fmt.Sprintf("/api/hotel/%d", hotel.ID), fiber.Map{"nombre": "Hotel Luna"}, true)
	if status != http.StatusOK {
		t.Fatalf("edit hotel: status %d, %+v", status, res)
	}
	edited := decode[model.Hotel](t, res.Data)
	if edited.Name != "Hotel Luna" || edited.Slug != "hotel-luna" || edited.Email != hotel.Email {
		t.Fatalf("unexpected edited hotel %+v", edited)
	}

	status, res = env.do(t, http.MethodGet, "/api/hotel/?nombre=luna&per_page=5", nil, false)
	if status != http.StatusOK {
		t.Fatalf("list hotels: status %d", status)
	}
	page := decode[struct {
		Rows       []model.Hotel `json:"rows"`
		Limit      int           `json:"limit"`
		Page       int           `json:"page"`
		TotalCount int64         `json:"totalCount"`
	}](t, res.Data)
	if page.TotalCount != 1 || len(page.Rows) != 1 || page.Limit != 5 || page.Page != 1 {
		t.Fatalf("unexpected page %+v", page)
	}

	status, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/hotel/%d", hotel.ID), nil, true)
	if status != http.StatusOK {
		t.Fatalf("delete hotel: status %d", status)
	}
	status, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/hotel/%d", hotel.ID), nil, false)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}

func TestHotelDuplicateFields(t *testing.T) {
	env := newTestEnv(t)
	env.createHotel(t, "Sol")

	body := hotelBody("Mar")
	body["telefono"] = hotelBody("Sol")["telefono"]
	body["email"] = hotelBody("Sol")["email"]
	status, res := env.do(t, http.MethodPost, "/api/hotel/", body, true)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if res.fieldErrors()["telefono"] == "" || res.fieldErrors()["email"] == "" {
		t.Fatalf("expected telefono and email errors, got %s", res.Errors)
	}
	if _, ok := res.fieldErrors()["sitioWeb"]; ok {
		t.Fatalf("sitioWeb is not duplicated: %s", res.Errors)
	}
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	env := newTestEnv(t)
	status, res := env.do(t, http.MethodPost, "/api/habitacion/", fiber.Map{"numero": "1", "tipo": "suite"}, true)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	for _, field := range []string{"tipo", "precioNoche", "hotel_id"} {
		if res.fieldErrors()[field] == "" {
			t.Fatalf("expected error for %s, got %s", field, res.Errors)
		}
	}
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.do(t, http.MethodPost, "/api/hotel/", hotelBody("Sol"), false)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/hotel/", nil, false)
	if status != http.StatusOK {
		t.Fatalf("reads should be public, got %d", status)
	}
}

func TestInvalidIdParam(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.do(t, http.MethodGet, "/api/huesped/abc", nil, false)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for non numeric id, got %d", status)
	}
}

func TestReserveAndCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Sol")
	room := env.createRoom(t, hotel.ID, "101", model.Simple)
	first := env.createGuest(t, "11111111A")
	second := env.createGuest(t, "22222222B")

	status, res := env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", first.ID, room.ID), nil, true)
	if status != http.StatusCreated {
		t.Fatalf("reserve: status %d, %+v", status, res)
	}
	reserved := decode[model.Guest](t, res.Data)
	if reserved.RoomID == nil || *reserved.RoomID != room.ID || reserved.CheckinAt == nil {
		t.Fatalf("unexpected reserved guest %+v", reserved)
	}

	status, res = env.do(t, http.MethodGet, fmt.Sprintf("/api/habitacion/%d/disponible", room.ID), nil, false)
	if status != http.StatusOK {
		t.Fatalf("availability: status %d", status)
	}
	if occ := decode[model.RoomOccupancy](t, res.Data); occ.Available || occ.Occupants != 1 || occ.Capacity != 1 {
		t.Fatalf("unexpected occupancy %+v", occ)
	}

	status, res = env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", second.ID, room.ID), nil, true)
	if status != http.StatusBadRequest || res.Message != constants.ROOM_NOT_AVAILABLE {
		t.Fatalf("expected room unavailable, got %d %+v", status, res)
	}

	status, res = env.do(t, http.MethodGet, fmt.Sprintf("/api/habitacion/%d/huespedes", room.ID), nil, false)
	if status != http.StatusOK || len(decode[[]model.Guest](t, res.Data)) != 1 {
		t.Fatalf("expected one guest in room, got %d %+v", status, res)
	}

	status, res = env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/checkout", first.ID), nil, true)
	if status != http.StatusOK || res.Message != constants.CHECKOUT_SUCCESS {
		t.Fatalf("checkout: %d %+v", status, res)
	}

	status, res = env.do(t, http.MethodGet, fmt.Sprintf("/api/huesped/%d", first.ID), nil, false)
	if status != http.StatusOK {
		t.Fatalf("get guest: status %d", status)
	}
	checkedOut := decode[model.Guest](t, res.Data)
	if checkedOut.RoomID != nil || checkedOut.CheckoutAt == nil {
		t.Fatalf("unexpected guest after checkout %+v", checkedOut)
	}

	status, _ = env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", second.ID, room.ID), nil, true)
	if status != http.StatusCreated {
		t.Fatalf("room should be free after checkout, got %d", status)
	}
}

func TestReserveNotFound(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Sol")
	room := env.createRoom(t, hotel.ID, "101", model.Doble)
	guest := env.createGuest(t, "11111111A")

	status, _ := env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", 999, room.ID), nil, true)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for missing guest, got %d", status)
	}
	status, _ = env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", guest.ID, 999), nil, true)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for missing room, got %d", status)
	}
	status, _ = env.do(t, http.MethodPost, "/api/huesped/999/checkout", nil, true)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 checking out a missing guest, got %d", status)
	}
}

func TestGuestQR(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Sol")
	room := env.createRoom(t, hotel.ID, "101", model.Simple)
	guest := env.createGuest(t, "11111111A")

	status, _ := env.do(t, http.MethodGet, fmt.Sprintf("/api/huesped/%d/qr", guest.ID), nil, false)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 without stay, got %d", status)
	}

	env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", guest.ID, room.ID), nil, true)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/huesped/%d/qr", guest.ID), nil)
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	defer resp.Body.Close()
	png, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected qr response %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("qr body is not a PNG")
	}
}

func TestHotelServiceLinks(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Sol")

	status, res := env.do(t, http.MethodPost, "/api/servicio/", fiber.Map{"nombre": "Spa"}, true)
	if status != http.StatusCreated {
		t.Fatalf("create service: %d %+v", status, res)
	}
	service := decode[model.Service](t, res.Data)

	status, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/hotel/%d/servicios", hotel.ID), nil, false)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for hotel without services, got %d", status)
	}

	link := fmt.Sprintf("/api/hotel/%d/servicio/%d", hotel.ID, service.ID)
	if status, _ = env.do(t, http.MethodPost, link, nil, true); status != http.StatusOK {
		t.Fatalf("link: %d", status)
	}
	if status, _ = env.do(t, http.MethodPost, link, nil, true); status != http.StatusBadRequest {
		t.Fatalf("expected 400 linking twice, got %d", status)
	}

	status, res = env.do(t, http.MethodGet, fmt.Sprintf("/api/servicio/%d/hoteles", service.ID), nil, false)
	if status != http.StatusOK || len(decode[[]model.Hotel](t, res.Data)) != 1 {
		t.Fatalf("expected one linked hotel, got %d %+v", status, res)
	}

	if status, _ = env.do(t, http.MethodDelete, link, nil, true); status != http.StatusOK {
		t.Fatalf("unlink: %d", status)
	}
	if status, _ = env.do(t, http.MethodDelete, link, nil, true); status != http.StatusBadRequest {
		t.Fatalf("expected 400 unlinking twice, got %d", status)
	}
}

func TestHotelCascadeAndDelete(t *testing.T) {
	env := newTestEnv(t)
	body := hotelBody("Sol")
	body["habitaciones"] = []fiber.Map{
		{"numero": "1", "tipo": "simple", "precioNoche": 30},
		{"numero": "2", "tipo": "doble", "precioNoche": 45},
	}
	body["servicios"] = []fiber.Map{{"nombre": "Wifi"}}

	status, res := env.do(t, http.MethodPost, "/api/hotel/cascada", body, true)
	if status != http.StatusCreated {
		t.Fatalf("cascade: %d %+v", status, res)
	}
	hotel := decode[model.Hotel](t, res.Data)
	if len(hotel.Rooms) != 2 || len(hotel.Services) != 1 {
		t.Fatalf("unexpected cascade result %+v", hotel)
	}

	guest := env.createGuest(t, "11111111A")
	env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", guest.ID, hotel.Rooms[0].ID), nil, true)

	status, res = env.do(t, http.MethodGet, fmt.Sprintf("/api/hotel/%d/ocupacion", hotel.ID), nil, false)
	if status != http.StatusOK {
		t.Fatalf("occupancy: %d", status)
	}
	if occ := decode[model.HotelOccupancy](t, res.Data); occ.OccupiedRooms != 1 || occ.Guests != 1 || occ.TotalRooms != 2 {
		t.Fatalf("unexpected occupancy %+v", occ)
	}

	if status, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/hotel/%d", hotel.ID), nil, true); status != http.StatusOK {
		t.Fatalf("delete hotel: %d", status)
	}
	if status, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/habitacion/%d", hotel.Rooms[0].ID), nil, false); status != http.StatusNotFound {
		t.Fatalf("rooms should be deleted with the hotel, got %d", status)
	}
	status, res = env.do(t, http.MethodGet, fmt.Sprintf("/api/huesped/%d", guest.ID), nil, false)
	if status != http.StatusOK || decode[model.Guest](t, res.Data).RoomID != nil {
		t.Fatalf("guest should survive without room, got %d %+v", status, res)
	}
	status, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/servicio/%d/hoteles", hotel.Services[0].ID), nil, false)
	if status != http.StatusNotFound {
		t.Fatalf("service links should be deleted with the hotel, got %d", status)
	}
}

func TestEditRoomCannotShrinkBelowOccupants(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Sol")
	room := env.createRoom(t, hotel.ID, "201", model.Doble)
	for _, doc := range []string{"A1", "A2"} {
		guest := env.createGuest(t, doc)
		if status, _ := env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", guest.ID, room.ID), nil, true); status != http.StatusCreated {
			t.Fatalf("reserve %s: %d", doc, status)
		}
	}

	status, res := env.do(t, http.MethodPut, fmt.Sprintf("/api/habitacion/%d", room.ID), fiber.Map{"tipo": "simple"}, true)
	if status != http.StatusBadRequest || res.fieldErrors()["tipo"] == "" {
		t.Fatalf("expected tipo error, got %d %+v", status, res)
	}
}

// una reserva que entra entre la validación y el guardado no puede dejar
// más huéspedes que camas
func TestEditRoomShrinkRechecksInsideTransaction(t *testing.T) {
	env := newTestEnv(t)
	hotel := env.createHotel(t, "Mar")
	room := env.createRoom(t, hotel.ID, "301", model.Doble)
	first := env.createGuest(t, "B1")
	if status, _ := env.do(t, http.MethodPost, fmt.Sprintf("/api/huesped/%d/reservar/%d", first.ID, room.ID), nil, true); status != http.StatusCreated {
		t.Fatalf("reserve first guest: %d", status)
	}
	second := env.createGuest(t, "B2")

	app := fiber.New()
	app.Put("/habitacion/:roomId", validate.EditRoom("roomId"), func(c *fiber.Ctx) error {
		if _, err := helper.DefaultReservations(database.DB).Reserve(c.UserContext(), second.ID, room.ID); err != nil {
			t.Errorf("reserve second guest: %v", err)
		}
		return c.Next()
	}, handler.EditRoom)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/habitacion/%d", room.ID), bytes.NewReader([]byte(`{"tipo":"simple"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("edit room: %v", err)
	}
	defer resp.Body.Close()
	var res apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest || res.fieldErrors()["tipo"] == "" {
		t.Fatalf("expected tipo error, got %d %+v", resp.StatusCode, res)
	}

	var stored model.Room
	if err := database.DB.First(&stored, room.ID).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	occupants, err := database.NewStore(database.DB).CountGuestsInRoom(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if stored.Type != model.Doble || occupants != 2 {
		t.Fatalf("room %s with %d occupants", stored.Type, occupants)
	}
}

func TestLoginAndRefresh(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/user/login", fiber.Map{"username": "admin", "password": "mala"}, false)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong password, got %d", status)
	}

	status, res := env.do(t, http.MethodPost, "/api/user/login", fiber.Map{"username": "admin", "password": "secreto123"}, false)
	if status != http.StatusOK {
		t.Fatalf("login: %d %+v", status, res)
	}
	tokens := decode[model.TokenData](t, res.Data)
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("missing tokens %+v", tokens)
	}

	status, res = env.do(t, http.MethodPost, "/api/user/refresh", fiber.Map{"refreshToken": tokens.RefreshToken}, false)
	if status != http.StatusOK || decode[model.TokenData](t, res.Data).AccessToken == "" {
		t.Fatalf("refresh: %d %+v", status, res)
	}

	status, _ = env.do(t, http.MethodPost, "/api/user/refresh", fiber.Map{"refreshToken": "desconocido"}, false)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown refresh token, got %d", status)
	}

	status, res = env.do(t, http.MethodGet, "/api/user/", nil, true)
	if status != http.StatusOK || decode[model.Account](t, res.Data).Username != "admin" {
		t.Fatalf("me: %d %+v", status, res)
	}
}

func TestAccountManagement(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodPost, "/api/user/cuentas", fiber.Map{"username": "recepcion", "password": "recepcion1"}, true)
	if status != http.StatusCreated {
		t.Fatalf("create account: %d %+v", status, res)
	}
	account := decode[model.Account](t, res.Data)
	if account.Role != constants.ROLE_RECEPCIONISTA || !account.Active {
		t.Fatalf("unexpected account %+v", account)
	}

	status, _ = env.do(t, http.MethodPost, "/api/user/cuentas", fiber.Map{"username": "recepcion", "password": "otra12345"}, true)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", status)
	}

	status, res = env.do(t, http.MethodPost, "/api/user/login", fiber.Map{"username": "recepcion", "password": "recepcion1"}, false)
	if status != http.StatusOK {
		t.Fatalf("login receptionist: %d %+v", status, res)
	}
	tokens := decode[model.TokenData](t, res.Data)

	status, _ = env.do(t, http.MethodPatch, fmt.Sprintf("/api/user/cuentas/%d/active", account.ID), fiber.Map{"active": false}, true)
	if status != http.StatusOK {
		t.Fatalf("deactivate: %d", status)
	}
	status, _ = env.do(t, http.MethodPost, "/api/user/login", fiber.Map{"username": "recepcion", "password": "recepcion1"}, false)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for inactive account, got %d", status)
	}

	var sessions int64
	if err := database.DB.Model(&model.Session{}).Where("account_id = ?", account.ID).Count(&sessions).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if sessions != 0 {
		t.Fatalf("expected sessions dropped on deactivation, found %d", sessions)
	}
	status, _ = env.do(t, http.MethodPost, "/api/user/refresh", fiber.Map{"refreshToken": tokens.RefreshToken}, false)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 refreshing a deactivated account, got %d", status)
	}
	if status := env.bearer(t, http.MethodGet, "/api/user/", tokens.AccessToken); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a deactivated account's access token, got %d", status)
	}

	status, res = env.do(t, http.MethodPost, "/api/user/cuentas", fiber.Map{"username": "recepcion2", "password": "recepcion2"}, true)
	if status != http.StatusCreated {
		t.Fatalf("create second account: %d %+v", status, res)
	}
	active := decode[model.Account](t, res.Data)
	receptionist, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: active.ID, Username: active.Username, Role: active.Role})
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if status := env.bearer(t, http.MethodGet, "/api/user/cuentas", receptionist); status != http.StatusForbidden {
		t.Fatalf("expected 403 for non admin, got %d", status)
	}
}

func TestRefreshRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/refresh", bytes.NewReader([]byte(`{"refreshToken":`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.StatusCode)
	}

	// sin cuerpo ni cookie falta el token, no el formato
	req = httptest.NewRequest(http.MethodPost, "/api/user/refresh", nil)
	resp, err = env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	defer resp.Body.Close()
	var res apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest || res.Message != constants.INVALID_SESSION {
		t.Fatalf("expected missing session error, got %d %+v", resp.StatusCode, res)
	}
}
