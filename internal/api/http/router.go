package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Tenants         *handlers.TenantsHandler
	Users           *handlers.UsersHandler
	Categories      *handlers.CategoriesHandler
	EscalationTypes *handlers.EscalationTypesHandler
	Templates       *handlers.TemplatesHandler
	Tickets         *handlers.TicketsHandler
	Chats           *handlers.ChatsHandler
	ChatMsgs        *handlers.ChatMsgsHandler
	Recordings      *handlers.RecordingsHandler
	Communications  *handlers.CommunicationsHandler
	Escalations     *handlers.EscalationsHandler
	Activities      *handlers.ActivitiesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/v1/api")

	tenants := api.Group("/tenants")
	tenants.Post("/create_tenant", cfg.Tenants.Create)
	tenants.Get("/get_tenants", cfg.Tenants.List)
	tenants.Get("/get_tenant_by_id/:id", cfg.Tenants.GetByID)
	tenants.Put("/update_tenant/:id", cfg.Tenants.Update)
	tenants.Delete("/delete_tenant/:id", cfg.Tenants.Delete)

	users := api.Group("/users")
	users.Post("/create_user", cfg.Users.Create)
	users.Get("/get_users", cfg.Users.List)
	users.Get("/get_user_by_id/:id", cfg.Users.GetByID)
	users.Put("/update_user/:id", cfg.Users.Update)
	users.Delete("/delete_user/:id", cfg.Users.Delete)

	categories := api.Group("/categories")
	categories.Post("/create_category", cfg.Categories.Create)
	categories.Get("/get_categories", cfg.Categories.List)
	categories.Get("/get_category_by_id/:id", cfg.Categories.GetByID)
	categories.Put("/update_category/:id", cfg.Categories.Update)
	categories.Delete("/delete_category/:id", cfg.Categories.Delete)

	escalationTypes := api.Group("/escalation_types")
	escalationTypes.Post("/create_escalation_type", cfg.EscalationTypes.Create)
	escalationTypes.Get("/get_escalation_types", cfg.EscalationTypes.List)
	escalationTypes.Get("/get_escalation_type_by_id/:id", cfg.EscalationTypes.GetByID)
	escalationTypes.Put("/update_escalation_type/:id", cfg.EscalationTypes.Update)
	escalationTypes.Delete("/delete_escalation_type/:id", cfg.EscalationTypes.Delete)

	templates := api.Group("/templates")
	templates.Post("/create_template", cfg.Templates.Create)
	templates.Get("/get_templates", cfg.Templates.List)
	templates.Get("/get_template_by_id/:id", cfg.Templates.GetByID)
	templates.Put("/update_template/:id", cfg.Templates.Update)
	templates.Delete("/delete_template/:id", cfg.Templates.Delete)

	tickets := api.Group("/tickets")
	tickets.Post("/create_ticket", cfg.Tickets.Create)
	tickets.Get("/get_tickets", cfg.Tickets.List)
	tickets.Get("/get_ticket_by_id/:id", cfg.Tickets.GetByID)
	tickets.Put("/update_ticket/:id", cfg.Tickets.Update)
	tickets.Delete("/delete_ticket/:id", cfg.Tickets.Delete)

	chats := api.Group("/chats")
	chats.Post("/create_chat", cfg.Chats.Create)
	chats.Get("/get_chats", cfg.Chats.List)
	chats.Get("/get_chat_by_id/:id", cfg.Chats.GetByID)
	chats.Put("/update_chat/:id", cfg.Chats.Update)
	chats.Delete("/delete_chat/:id", cfg.Chats.Delete)

	chatMsgs := api.Group("/chat_msgs")
	chatMsgs.Post("/create_chat_msg", cfg.ChatMsgs.Create)
	chatMsgs.Get("/get_chat_msgs", cfg.ChatMsgs.List)
	chatMsgs.Get("/get_chat_msg_by_id/:id", cfg.ChatMsgs.GetByID)
	chatMsgs.Put("/update_chat_msg/:id", cfg.ChatMsgs.Update)
	chatMsgs.Delete("/delete_chat_msg/:id", cfg.ChatMsgs.Delete)

	recordings := api.Group("/recordings")
	recordings.Post("/create_recording", cfg.Recordings.Create)
	recordings.Get("/get_recordings", cfg.Recordings.List)
	recordings.Get("/get_recording_by_id/:id", cfg.Recordings.GetByID)
	recordings.Put("/update_recording/:id", cfg.Recordings.Update)
	recordings.Delete("/delete_recording/:id", cfg.Recordings.Delete)

	communications := api.Group("/communications")
	communications.Post("/create_communication", cfg.Communications.Create)
	communications.Get("/get_communications", cfg.Communications.List)
	communications.Get("/get_communication_by_id/:id", cfg.Communications.GetByID)
	communications.Put("/update_communication/:id", cfg.Communications.Update)
	communications.Delete("/delete_communication/:id", cfg.Communications.Delete)

	escalations := api.Group("/escalations")
	escalations.Post("/create_escalation", cfg.Escalations.Create)
	escalations.Get("/get_escalations", cfg.Escalations.List)
	escalations.Get("/get_escalation_by_id/:id", cfg.Escalations.GetByID)
	escalations.Put("/update_escalation/:id", cfg.Escalations.Update)
	escalations.Delete("/delete_escalation/:id", cfg.Escalations.Delete)

	activities := api.Group("/recent_activities")
	activities.Get("/get_recent_activities", cfg.Activities.List)
	activities.Get("/get_activity_by_id/:entity_type/:id", cfg.Activities.GetByID)
}
