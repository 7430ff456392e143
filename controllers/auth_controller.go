package controllers

import (
	"errors"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController контроллер для аутентификации
type AuthController struct {
	store storage.Store
}

// NewAuthController создает новый экземпляр AuthController
func NewAuthController(store storage.Store) *AuthController {
	return &AuthController{store: store}
}

// RegisterRequest структура запроса регистрации
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest структура запроса входа
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAccountRequest структура запроса изменения учетной записи
type UpdateAccountRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Register обрабатывает регистрацию пользователя
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"msg": "Missing email or password"})
	}

	users := ac.store.Collection(models.UsersCollection)

	// Проверяем, существует ли пользователь
	_, err := users.FindOne(c.Context(), storage.Filter{
		Equals: map[string]interface{}{"email": req.Email},
	})
	if err == nil {
		return c.Status(400).JSON(fiber.Map{"msg": "User already exists"})
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if _, err := users.InsertOne(c.Context(), storage.Document{
		"email":    req.Email,
		"password": hash,
	}); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"msg": "User created successfully"})
}

// Login обрабатывает вход пользователя
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	user, err := ac.store.Collection(models.UsersCollection).FindOne(c.Context(), storage.Filter{
		Equals: map[string]interface{}{"email": req.Email},
	})
	if err != nil || !utils.CheckPasswordHash(req.Password, storage.String(user["password"])) {
		return c.Status(401).JSON(fiber.Map{"msg": "Bad email or password"})
	}

	token, err := utils.GenerateJWT(user.ID(), req.Email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"access_token": token})
}

// UpdateAccount обрабатывает смену email и пароля текущего пользователя
func (ac *AuthController) UpdateAccount(c *fiber.Ctx) error {
	currentEmail, _ := c.Locals("user_email").(string)

	var req UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	users := ac.store.Collection(models.UsersCollection)
	user, err := users.FindOne(c.Context(), storage.Filter{
		Equals: map[string]interface{}{"email": currentEmail},
	})
	if err != nil || !utils.CheckPasswordHash(req.CurrentPassword, storage.String(user["password"])) {
		return c.Status(401).JSON(fiber.Map{"msg": "Invalid current password"})
	}

	set := storage.Document{}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.NewPassword != "" {
		hash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			return err
		}
		set["password"] = hash
	}

	if len(set) == 0 {
		return c.Status(400).JSON(fiber.Map{"msg": "No changes provided"})
	}

	if err := users.UpdateByID(c.Context(), user.ID(), set); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"msg": "Account updated successfully"})
}
