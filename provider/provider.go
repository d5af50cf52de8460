package provider

import (
	"listening-show/biz/application/service"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/redis"
	"listening-show/biz/infrastructure/repository/batch"
	"listening-show/biz/infrastructure/repository/listening"
	"listening-show/biz/infrastructure/repository/student"
	"listening-show/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config           *config.Config
	ListeningService service.IListeningService
	UserService      service.IUserService
	StudentService   service.IStudentService
	BatchService     service.IBatchService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.ListeningServiceSet,
	service.UserServiceSet,
	service.StudentServiceSet,
	service.BatchServiceSet,
)

var MapperSet = wire.NewSet(
	listening.NewMongoMapper,
	wire.Bind(new(listening.IMongoMapper), new(*listening.MongoMapper)),
	student.NewMongoMapper,
	wire.Bind(new(student.IMongoMapper), new(*student.MongoMapper)),
	batch.NewMongoMapper,
	wire.Bind(new(batch.IMongoMapper), new(*batch.MongoMapper)),
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	redis.NewSignInLimiter,
	MapperSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
