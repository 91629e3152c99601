package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Contact        string  `json:"contact"`
	ProfilePicture *string `json:"profilePicture"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Email          string  `json:"email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Contact        *string `json:"contact"`
	ProfilePicture *string `json:"profilePicture"`
	Password       *string `json:"password"`
}

type createStoreRequest struct {
	UserID        string `json:"userID"`
	StoreName     string `json:"storeName"`
	ItemType      string `json:"itemType"`
	NumCategories int    `json:"numCategories"`
	Location      string `json:"location"`
}

type addCategoryRequest struct {
	UserID   string `json:"userID"`
	StoreID  string `json:"storeID"`
	ItemType string `json:"itemType"`
}

type categoryView struct {
	CategoryID string    `json:"categoryID"`
	StoreID    string    `json:"storeID"`
	ItemType   string    `json:"itemType"`
	CreatedAt  time.Time `json:"createdAt"`
}

// bind decodes the JSON body into v, reporting a malformed body as a
// validation error.
func bind(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return common.Validationf("malformed request body")
	}
	return nil
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	userID, err := s.accounts.Register(c.Request().Context(), services.RegisterRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		ContactNumber:  req.Contact,
		ProfilePicture: req.ProfilePicture,
	})
	s.metrics.RecordOperation("register", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{Success: true, UserID: userID})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	userID, err := s.accounts.Login(c.Request().Context(), req.Email, req.Password)
	s.metrics.RecordOperation("login", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{Success: true, UserID: userID})
}

func (s *Server) getProfile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return common.Validationf("email is required")
	}

	view, err := s.accounts.GetProfile(c.Request().Context(), email)
	s.metrics.RecordOperation("get_profile", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) updateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Email == "" {
		return common.Validationf("email is required")
	}

	rotated, err := s.accounts.UpdateProfile(c.Request().Context(), req.Email, services.ProfileUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ContactNumber:  req.Contact,
		ProfilePicture: req.ProfilePicture,
		Password:       req.Password,
	})
	s.metrics.RecordOperation("update_profile", err)
	if err != nil {
		return err
	}

	msg := "Profile updated successfully."
	if rotated {
		s.metrics.RecordRotation()
		msg = "Password updated. Please log in again."
	}
	return c.JSON(http.StatusOK, response{Success: true, Message: msg, Rotated: &rotated})
}

func (s *Server) createStore(c echo.Context) error {
	var req createStoreRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	storeID, err := s.stores.CreateStore(c.Request().Context(), services.CreateStoreRequest{
		OwnerUserID:   req.UserID,
		StoreName:     req.StoreName,
		ItemType:      req.ItemType,
		NumCategories: req.NumCategories,
		Location:      req.Location,
	})
	s.metrics.RecordOperation("create_store", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{Success: true, StoreID: storeID, Message: "Store created successfully."})
}

func (s *Server) addCategory(c echo.Context) error {
	var req addCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err := s.categories.AddCategory(c.Request().Context(), req.UserID, req.StoreID, req.ItemType)
	s.metrics.RecordOperation("add_category", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{Success: true, Message: "Item category added."})
}

func (s *Server) listCategories(c echo.Context) error {
	list, err := s.categories.ListCategories(c.Request().Context(), c.QueryParam("storeID"))
	s.metrics.RecordOperation("list_categories", err)
	if err != nil {
		return err
	}

	out := make([]categoryView, 0, len(list))
	for _, cat := range list {
		out = append(out, categoryView{
			CategoryID: cat.ID,
			StoreID:    cat.StoreID,
			ItemType:   cat.ItemType,
			CreatedAt:  cat.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
