package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Requests ---

type createProductionRequest struct {
	Title       string `json:"title"       validate:"required"`
	Genre       string `json:"genre"`
	Length      *int   `json:"length"      validate:"omitempty,length"`
	Year        *int   `json:"year"        validate:"omitempty,year"`
	Image       string `json:"image"       validate:"required,image"`
	Language    string `json:"language"`
	Director    string `json:"director"`
	Description string `json:"description" validate:"max=50"`
	Composer    string `json:"composer"`
}

// updateProductionRequest carries a partial update: absent fields stay as they are.
type updateProductionRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Genre       *string `json:"genre"`
	Length      *int    `json:"length"      validate:"omitempty,length"`
	Year        *int    `json:"year"        validate:"omitempty,year"`
	Image       *string `json:"image"       validate:"omitempty,image"`
	Language    *string `json:"language"`
	Director    *string `json:"director"`
	Description *string `json:"description" validate:"omitempty,max=50"`
	Composer    *string `json:"composer"`
}

type createActorRequest struct {
	Name    string `json:"name"    validate:"required"`
	Image   string `json:"image"   validate:"required,image"`
	Age     *int   `json:"age"     validate:"omitempty,age"`
	Country string `json:"country"`
}

type updateActorRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	Image   *string `json:"image"   validate:"omitempty,image"`
	Age     *int    `json:"age"     validate:"omitempty,age"`
	Country *string `json:"country"`
}

type createRoleRequest struct {
	RoleName     string `json:"role_name"     validate:"required"`
	ProductionID string `json:"production_id" validate:"required"`
	ActorID      string `json:"actor_id"      validate:"required"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Admin    bool   `json:"admin"`
}

// loginRequest is not validated: missing fields fail as invalid credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Responses ---
//
// Nested records stop one level down: a production lists its cast, but the
// actors in that cast do not list their productions again.

type productionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre,omitempty"`
	Length      *int   `json:"length,omitempty"`
	Year        *int   `json:"year,omitempty"`
	Image       string `json:"image"`
	Language    string `json:"language,omitempty"`
	Director    string `json:"director,omitempty"`
	Description string `json:"description,omitempty"`
	Composer    string `json:"composer,omitempty"`
}

type actorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Age     *int   `json:"age,omitempty"`
	Country string `json:"country,omitempty"`
}

type castMemberResponse struct {
	ID       string        `json:"id"`
	RoleName string        `json:"role_name"`
	Actor    actorResponse `json:"actor"`
}

type productionDetailResponse struct {
	productionResponse
	Roles  []castMemberResponse `json:"roles"`
	Actors []actorResponse      `json:"actors"`
}

type creditResponse struct {
	ID         string             `json:"id"`
	RoleName   string             `json:"role_name"`
	Production productionResponse `json:"production"`
}

type actorDetailResponse struct {
	actorResponse
	Roles       []creditResponse     `json:"roles"`
	Productions []productionResponse `json:"productions"`
}

type roleResponse struct {
	ID           string             `json:"id"`
	RoleName     string             `json:"role_name"`
	ProductionID string             `json:"production_id"`
	ActorID      string             `json:"actor_id"`
	Production   productionResponse `json:"production"`
	Actor        actorResponse      `json:"actor"`
}

type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
