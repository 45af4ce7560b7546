package handler

import (
	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProductionInput(req createProductionRequest, requestedBy string) ports.CreateProductionInput {
	return ports.CreateProductionInput{
		Title:       req.Title,
		Genre:       req.Genre,
		Length:      req.Length,
		Year:        req.Year,
		Image:       req.Image,
		Language:    req.Language,
		Director:    req.Director,
		Description: req.Description,
		Composer:    req.Composer,
		RequestedBy: requestedBy,
	}
}

func toUpdateProductionInput(id string, req updateProductionRequest, requestedBy string) ports.UpdateProductionInput {
	return ports.UpdateProductionInput{
		ID:          id,
		Title:       req.Title,
		Genre:       req.Genre,
		Length:      req.Length,
		Year:        req.Year,
		Image:       req.Image,
		Language:    req.Language,
		Director:    req.Director,
		Description: req.Description,
		Composer:    req.Composer,
		RequestedBy: requestedBy,
	}
}

func toCreateActorInput(req createActorRequest, requestedBy string) ports.CreateActorInput {
	return ports.CreateActorInput{
		Name:        req.Name,
		Image:       req.Image,
		Age:         req.Age,
		Country:     req.Country,
		RequestedBy: requestedBy,
	}
}

func toUpdateActorInput(id string, req updateActorRequest, requestedBy string) ports.UpdateActorInput {
	return ports.UpdateActorInput{
		ID:          id,
		Name:        req.Name,
		Image:       req.Image,
		Age:         req.Age,
		Country:     req.Country,
		RequestedBy: requestedBy,
	}
}

// --- Domain → Response ---

func toProductionResponse(p *domain.Production) productionResponse {
	return productionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Genre:       p.Genre,
		Length:      p.Length,
		Year:        p.Year,
		Image:       p.Image,
		Language:    p.Language,
		Director:    p.Director,
		Description: p.Description,
		Composer:    p.Composer,
	}
}

func toProductionResponses(list []*domain.Production) []productionResponse {
	out := make([]productionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductionResponse(p))
	}
	return out
}

func toActorResponse(a *domain.Actor) actorResponse {
	return actorResponse{
		ID:      a.ID,
		Name:    a.Name,
		Image:   a.Image,
		Age:     a.Age,
		Country: a.Country,
	}
}

func toActorResponses(list []*domain.Actor) []actorResponse {
	out := make([]actorResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toActorResponse(a))
	}
	return out
}

func toProductionDetailResponse(d *ports.ProductionDetail) productionDetailResponse {
	resp := productionDetailResponse{
		productionResponse: toProductionResponse(d.Production),
		Roles:              make([]castMemberResponse, 0, len(d.Roles)),
		Actors:             toActorResponses(d.Actors),
	}
	for _, m := range d.Roles {
		resp.Roles = append(resp.Roles, castMemberResponse{
			ID:       m.RoleID,
			RoleName: m.RoleName,
			Actor:    toActorResponse(m.Actor),
		})
	}
	return resp
}

func toActorDetailResponse(d *ports.ActorDetail) actorDetailResponse {
	resp := actorDetailResponse{
		actorResponse: toActorResponse(d.Actor),
		Roles:         make([]creditResponse, 0, len(d.Roles)),
		Productions:   toProductionResponses(d.Productions),
	}
	for _, cr := range d.Roles {
		resp.Roles = append(resp.Roles, creditResponse{
			ID:         cr.RoleID,
			RoleName:   cr.RoleName,
			Production: toProductionResponse(cr.Production),
		})
	}
	return resp
}

func toRoleResponse(d *ports.RoleDetail) roleResponse {
	return roleResponse{
		ID:           d.Role.ID,
		RoleName:     d.Role.RoleName,
		ProductionID: d.Role.ProductionID,
		ActorID:      d.Role.ActorID,
		Production:   toProductionResponse(d.Production),
		Actor:        toActorResponse(d.Actor),
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Admin:    u.Admin,
	}
}
