package router

import (
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	user := api.Group("/user")
	user.Post("/login", validate.Login(), handler.Login)
	user.Post("/refresh", validate.Refresh(), handler.RefreshToken)
	user.Get("/", middleware.Protected(), handler.Me)
	user.Get("/cuentas", middleware.Protected(), validate.AdminOnly(), handler.GetAccounts)
	user.Post("/cuentas", middleware.Protected(), validate.AdminOnly(), validate.CreateAccount(), handler.CreateAccount)
	user.Put("/cuentas/:accountId/password", middleware.Protected(), validate.AdminOnly(), validate.ChangePassword("accountId"), handler.ChangePassword)
	user.Patch("/cuentas/:accountId/active", middleware.Protected(), validate.AdminOnly(), validate.ToggleActiveAccount("accountId"), handler.ToggleActiveAccount)

	hotel := api.Group("/hotel")
	hotel.Get("/", handler.GetHotels)
	hotel.Get("/all", handler.GetAllHotels)
	hotel.Post("/", middleware.Protected(), validate.CreateHotel(), handler.CreateHotel)
	hotel.Post("/cascada", middleware.Protected(), validate.CreateHotelCascade(), handler.CreateHotelCascade)
	hotel.Get("/:hotelId", validate.GetById("hotelId"), handler.GetHotelById)
	hotel.Put("/:hotelId", middleware.Protected(), validate.EditHotel("hotelId"), handler.EditHotel)
	hotel.Delete("/:hotelId", middleware.Protected(), validate.GetById("hotelId"), handler.DeleteHotel)
	hotel.Get("/:hotelId/habitaciones", validate.GetById("hotelId"), handler.GetHotelRooms)
	hotel.Get("/:hotelId/servicios", validate.GetById("hotelId"), handler.GetHotelServices)
	hotel.Get("/:hotelId/ocupacion", validate.GetById("hotelId"), handler.GetHotelOccupancy)
	hotel.Post("/:hotelId/servicio/:serviceId", middleware.Protected(), validate.GetById("hotelId", "serviceId"), handler.AddHotelService)
	hotel.Delete("/:hotelId/servicio/:serviceId", middleware.Protected(), validate.GetById("hotelId", "serviceId"), handler.RemoveHotelService)

	room := api.Group("/habitacion")
	room.Get("/", handler.GetRooms)
	room.Get("/all", handler.GetAllRooms)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Post("/bulk", middleware.Protected(), validate.CreateRoomsBulk(), handler.CreateRoomsBulk)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/:roomId", middleware.Protected(), validate.GetById("roomId"), handler.DeleteRoom)
	room.Get("/:roomId/hotel", validate.GetById("roomId"), handler.GetRoomHotel)
	room.Get("/:roomId/huespedes", validate.GetById("roomId"), handler.GetRoomGuests)
	room.Get("/:roomId/disponible", validate.GetById("roomId"), handler.GetRoomAvailability)
	room.Get("/:roomId/ocupacion/ws", middleware.WebsocketUpgrade(), validate.GetById("roomId"), websocket.New(handler.RoomOccupancyWebsocket))

	guest := api.Group("/huesped")
	guest.Get("/", handler.GetGuests)
	guest.Get("/all", handler.GetAllGuests)
	guest.Post("/", middleware.Protected(), validate.CreateGuest(), handler.CreateGuest)
	guest.Get("/:guestId", validate.GetById("guestId"), handler.GetGuestById)
	guest.Put("/:guestId", middleware.Protected(), validate.EditGuest("guestId"), handler.EditGuest)
	guest.Delete("/:guestId", middleware.Protected(), validate.GetById("guestId"), handler.DeleteGuest)
	guest.Get("/:guestId/habitacion", validate.GetById("guestId"), handler.GetGuestRoom)
	guest.Get("/:guestId/qr", validate.GetById("guestId"), handler.GetGuestQR)
	guest.Post("/:guestId/reservar/:roomId", middleware.Protected(), validate.GetById("guestId", "roomId"), handler.ReserveRoom)
	guest.Post("/:guestId/checkout", middleware.Protected(), validate.GetById("guestId"), handler.CheckoutGuest)

	service := api.Group("/servicio")
	service.Get("/", handler.GetServices)
	service.Get("/all", handler.GetAllServices)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)
	service.Get("/:serviceId", validate.GetById("serviceId"), handler.GetServiceById)
	service.Put("/:serviceId", middleware.Protected(), validate.EditService("serviceId"), handler.EditService)
	service.Delete("/:serviceId", middleware.Protected(), validate.GetById("serviceId"), handler.DeleteService)
	service.Get("/:serviceId/hoteles", validate.GetById("serviceId"), handler.GetServiceHotels)
}
