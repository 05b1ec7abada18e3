package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/travelog/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func registeredUserJSON(u *entity.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"fullName": u.FullName,
	}
}

func profileJSON(u *entity.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"fullName":  u.FullName,
		"avatarUrl": u.AvatarURL,
		"bio":       u.Bio,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}

func entryJSON(e *entity.JournalEntry) gin.H {
	return gin.H{
		"id":          e.ID,
		"userId":      e.UserID,
		"city":        e.City,
		"country":     e.Country,
		"latitude":    e.Latitude,
		"longitude":   e.Longitude,
		"visitedDate": e.VisitedDate.Format(dateLayout),
		"title":       e.Title,
		"description": e.Description,
		"companions":  e.Companions,
		"rating":      e.Rating,
		"createdAt":   e.CreatedAt,
		"updatedAt":   e.UpdatedAt,
	}
}

func entriesJSON(entries []*entity.JournalEntry) []gin.H {
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON(e))
	}
	return out
}
