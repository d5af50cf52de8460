package main

import (
	"context"
	"flag"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/repository/batch"
	"listening-show/biz/infrastructure/repository/listening"
	"listening-show/biz/infrastructure/repository/student"
	"listening-show/biz/infrastructure/repository/user"
	"listening-show/biz/infrastructure/util/log"
	"os"
)

type cleaner interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// 清空全部集合, 必须显式传入 -yes
func main() {
	yes := flag.Bool("yes", false, "confirm deleting all users, students, batches and listening records")
	flag.Parse()
	if !*yes {
		flag.Usage()
		os.Exit(2)
	}

	c, err := config.NewConfig()
	if err != nil {
		log.Error("load config fail: %v", err)
		os.Exit(1)
	}
	ctx := context.Background()

	collections := map[string]cleaner{
		"user":      user.NewMongoMapper(c),
		"student":   student.NewMongoMapper(c),
		"batch":     batch.NewMongoMapper(c),
		"listening": listening.NewMongoMapper(c),
	}
	for name, m := range collections {
		n, err := m.DeleteAll(ctx)
		if err != nil {
			log.Error("clean %s fail: %v", name, err)
			os.Exit(1)
		}
		log.Info("clean %s, deleted=%d", name, n)
	}
	log.Info("database cleaned successfully")
}
