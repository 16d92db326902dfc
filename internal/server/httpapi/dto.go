package httpapi

import (
	"time"

	"github.com/fstr-project/pereval/internal/server/models"
)

// Wire format of the submitData API. Field names follow the public contract
// of the service: a nested submitter profile, coordinates, per-season levels
// and a list of opaque image payloads.

type userPayload struct {
	Email string  `json:"email"`
	Fam   string  `json:"fam"`
	Name  string  `json:"name"`
	Otc   *string `json:"otc"`
	Phone *string `json:"phone"`
}

type coordsPayload struct {
	Latitude  string  `json:"latitude"`
	Longitude string  `json:"longitude"`
	Height    *string `json:"height"`
}

type levelPayload struct {
	Winter *string `json:"winter"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Spring *string `json:"spring"`
}

type imagePayload struct {
	Data  string  `json:"data"`
	Title *string `json:"title"`
}

type submitRequest struct {
	BeautyTitle *string        `json:"beauty_title"`
	Title       string         `json:"title"`
	OtherTitles *string        `json:"other_titles"`
	Connect     *string        `json:"connect"`
	AddTime     time.Time      `json:"add_time"`
	User        userPayload    `json:"user"`
	Coords      coordsPayload  `json:"coords"`
	Level       levelPayload   `json:"level"`
	Images      []imagePayload `json:"images"`
}

type submitResponse struct {
	Status  int     `json:"status"`
	Message *string `json:"message"`
	ID      *int64  `json:"id"`
}

type passResponse struct {
	ID          int64          `json:"id"`
	BeautyTitle *string        `json:"beauty_title"`
	Title       string         `json:"title"`
	OtherTitles *string        `json:"other_titles"`
	Connect     *string        `json:"connect"`
	AddTime     time.Time      `json:"add_time"`
	User        userPayload    `json:"user"`
	Coords      coordsPayload  `json:"coords"`
	Level       levelPayload   `json:"level"`
	Images      []imagePayload `json:"images"`
}

// toModel converts the request into the service model. The edit path reuses
// the same conversion and simply ignores User and Images.
func (r *submitRequest) toModel() *models.Pass {
	pass := &models.Pass{
		BeautyTitle: r.BeautyTitle,
		Title:       r.Title,
		OtherTitles: r.OtherTitles,
		Connect:     r.Connect,
		AddTime:     r.AddTime,
		Latitude:    r.Coords.Latitude,
		Longitude:   r.Coords.Longitude,
		Height:      r.Coords.Height,
		LevelWinter: r.Level.Winter,
		LevelSummer: r.Level.Summer,
		LevelAutumn: r.Level.Autumn,
		LevelSpring: r.Level.Spring,
		Account: &models.Account{
			Email:      r.User.Email,
			FamilyName: r.User.Fam,
			GivenName:  r.User.Name,
			Patronymic: r.User.Otc,
			Phone:      r.User.Phone,
		},
	}
	for _, img := range r.Images {
		pass.Images = append(pass.Images, &models.Image{Data: img.Data, Title: img.Title})
	}
	return pass
}

func toPassResponse(p *models.Pass) passResponse {
	resp := passResponse{
		ID:          p.ID,
		BeautyTitle: p.BeautyTitle,
		Title:       p.Title,
		OtherTitles: p.OtherTitles,
		Connect:     p.Connect,
		AddTime:     p.AddTime,
		Coords: coordsPayload{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Height:    p.Height,
		},
		Level: levelPayload{
			Winter: p.LevelWinter,
			Summer: p.LevelSummer,
			Autumn: p.LevelAutumn,
			Spring: p.LevelSpring,
		},
		Images: []imagePayload{},
	}
	if p.Account != nil {
		resp.User = userPayload{
			Email: p.Account.Email,
			Fam:   p.Account.FamilyName,
			Name:  p.Account.GivenName,
			Otc:   p.Account.Patronymic,
			Phone: p.Account.Phone,
		}
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, imagePayload{Data: img.Data, Title: img.Title})
	}
	return resp
}
