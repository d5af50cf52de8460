package main

import (
	"context"
	"errors"
	"flag"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/application/service"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/repository/student"
	"listening-show/biz/infrastructure/repository/user"
	"listening-show/biz/infrastructure/util/log"
	"os"
	"time"
)

// 初始化测试账号: 一个教师, 一个家长, 一个学生账号及其名下的学生(周六上课)
func main() {
	password := flag.String("password", "test1234", "password of every seeded account")
	flag.Parse()

	c, err := config.NewConfig()
	errAndDie(err)
	ctx := context.Background()

	users := user.NewMongoMapper(c)
	svc := &service.UserService{UserMapper: users}

	accounts := []*show.CreateUserReq{
		{Name: "Test Instructor", Email: "instructor@example.com", Password: *password, Role: consts.RoleInstructor},
		{Name: "Test Parent", Email: "parent@example.com", Password: *password, Role: consts.RoleParent},
		{Name: "Test Student", Email: "student@test.com", Password: *password, Role: consts.RoleStudent},
	}
	var owner *user.User
	for _, req := range accounts {
		u, err := svc.CreateUser(ctx, req)
		if errors.Is(err, consts.ErrRepeatedSignUp) {
			log.Info("user %s already exists, skip", req.Email)
			u, err = users.FindOneByEmail(ctx, req.Email)
		}
		errAndDie(err)
		if u.Role == consts.RoleStudent {
			owner = u
		}
	}

	saturday := int64(time.Saturday)
	stu := &student.Student{
		Name:     "Test Student",
		Dob:      time.Date(2015, time.May, 1, 0, 0, 0, 0, time.UTC),
		Level:    "Basic",
		ClassDay: &saturday,
		OwnerID:  owner.ID.Hex(),
	}
	students := student.NewMongoMapper(c)
	owned, err := students.FindByOwner(ctx, stu.OwnerID)
	errAndDie(err)
	if len(owned) == 0 {
		errAndDie(students.Insert(ctx, stu))
		log.Info("seeded student %s, id=%s", stu.Name, stu.ID.Hex())
	}

	log.Info("seeded users: %s, %s, %s", accounts[0].Email, accounts[1].Email, accounts[2].Email)
}

func errAndDie(err error) {
	if err != nil {
		log.Error("seed fail: %v", err)
		os.Exit(1)
	}
}
