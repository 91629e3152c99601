package grpc

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/server/services"
)

// Handlers return service errors untouched; observeInterceptor maps them.

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	userID, err := s.accounts.Register(ctx, services.RegisterRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		ContactNumber:  req.ContactNumber,
		ProfilePicture: req.ProfilePicture,
	})
	s.metrics.RecordOperation("register", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Registered", "user_id", userID)
	return &api.RegisterResponse{UserID: userID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	userID, err := s.accounts.Login(ctx, req.Email, req.Password)
	s.metrics.RecordOperation("login", err)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{UserID: userID}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *api.GetProfileRequest) (*api.GetProfileResponse, error) {

	view, err := s.accounts.GetProfile(ctx, req.Email)
	s.metrics.RecordOperation("get_profile", err)
	if err != nil {
		return nil, err
	}

	return &api.GetProfileResponse{Profile: api.Profile{
		UserID:         view.UserID,
		Email:          view.Email,
		FirstName:      view.FirstName,
		LastName:       view.LastName,
		ContactNumber:  view.ContactNumber,
		ProfilePicture: view.ProfilePicture,
		CreatedAt:      view.CreatedAt,
	}}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.UpdateProfileResponse, error) {

	rotated, err := s.accounts.UpdateProfile(ctx, req.Email, services.ProfileUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ContactNumber:  req.ContactNumber,
		ProfilePicture: req.ProfilePicture,
		Password:       req.Password,
	})
	s.metrics.RecordOperation("update_profile", err)
	if err != nil {
		return nil, err
	}
	if rotated {
		s.metrics.RecordRotation()
	}

	return &api.UpdateProfileResponse{Rotated: rotated}, nil
}

func (s *GRPCServer) CreateStore(ctx context.Context, req *api.CreateStoreRequest) (*api.CreateStoreResponse, error) {

	storeID, err := s.stores.CreateStore(ctx, services.CreateStoreRequest{
		OwnerUserID:   req.OwnerUserID,
		StoreName:     req.StoreName,
		ItemType:      req.ItemType,
		NumCategories: req.NumCategories,
		Location:      req.Location,
	})
	s.metrics.RecordOperation("create_store", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Store created", "store_id", storeID, "owner", req.OwnerUserID)
	return &api.CreateStoreResponse{StoreID: storeID}, nil
}

func (s *GRPCServer) AddCategory(ctx context.Context, req *api.AddCategoryRequest) (*api.AddCategoryResponse, error) {

	err := s.categories.AddCategory(ctx, req.UserID, req.StoreID, req.ItemType)
	s.metrics.RecordOperation("add_category", err)
	if err != nil {
		return nil, err
	}

	return &api.AddCategoryResponse{}, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, req *api.ListCategoriesRequest) (*api.ListCategoriesResponse, error) {

	list, err := s.categories.ListCategories(ctx, req.StoreID)
	s.metrics.RecordOperation("list_categories", err)
	if err != nil {
		return nil, err
	}

	resp := &api.ListCategoriesResponse{Categories: make([]api.Category, 0, len(list))}
	for _, c := range list {
		resp.Categories = append(resp.Categories, api.Category{
			CategoryID: c.ID,
			StoreID:    c.StoreID,
			ItemType:   c.ItemType,
			CreatedAt:  c.CreatedAt,
		})
	}
	return resp, nil
}
