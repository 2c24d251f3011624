package user

import (
	"dispatch/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Phone:     u.Phone,
		Type:      entities.UserType(u.Type),
		CreatedAt: u.CreatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}

	userDB := &UserModifyDB{
		ID:       userModify.ID,
		Name:     userModify.Name,
		Lastname: userModify.Lastname,
		Email:    userModify.Email,
		Phone:    userModify.Phone,
	}
	if userModify.Type != nil {
		userType := userModify.Type.String()
		userDB.Type = &userType
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
