package deps

import (
	"accounthub/internal/bootstrap"
	"accounthub/internal/config"
	"accounthub/internal/core/domain/account"
	dl "accounthub/internal/core/domain/logging"
	drl "accounthub/internal/core/domain/rate_limiter"
	duow "accounthub/internal/core/domain/unit_of_work"
	dbaccount "accounthub/internal/db/account"
	uow "accounthub/internal/db/unit_of_work"
	"accounthub/internal/implementations/email"
	eventpublisher "accounthub/internal/implementations/event_publisher"
	"accounthub/internal/implementations/logging"
	passwordhasher "accounthub/internal/implementations/password_hasher"
	randomstringgenerator "accounthub/internal/implementations/random_string_generator"
	ratelimiter "accounthub/internal/implementations/rate_limiter"
	tokencodec "accounthub/internal/implementations/token_codec"
	"accounthub/internal/rabbitmq"
	emailnotifications "accounthub/internal/rabbitmq/consumers/email_notifications"
	"accounthub/internal/rabbitmq/publishers/notifications"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork        duow.UnitOfWork
	AccountRepository account.Repository
	AddressRepository account.AddressRepository
	RoleRepository    account.RoleRepository
	SessionRepository account.SessionRepository

	RateLimiter drl.RateLimiter

	EmailSender           *email.Sender
	MailPublisher         *notifications.RabbitMQ
	MailConsumer          *emailnotifications.Consumer
	EventPublisher        account.EventPublisher
	IDGenerator           account.IDGenerator
	SessionTokenGenerator account.SessionTokenGenerator
	PasswordHasher        account.PasswordHasher
	TokenCodec            account.TokenCodec
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	accountRepository := dbaccount.NewPgxRepository(deps.DB)
	deps.AccountRepository = accountRepository
	deps.AddressRepository = accountRepository
	deps.RoleRepository = dbaccount.NewPgxRoleRepository(deps.DB)
	deps.SessionRepository = dbaccount.NewPgxSessionRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.IDGenerator = randomstringgenerator.NewGenerator()
	deps.SessionTokenGenerator = randomstringgenerator.NewGenerator()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.TokenCodec = tokencodec.NewHMAC(deps.Config.Secret, deps.Now)
	deps.EventPublisher = eventpublisher.NewSSEPublisher(deps.SseServer, deps.Logger, deps.Now)

	deps.EmailSender = email.NewSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailVerificationTemplate,
		deps.Config.AwsEmailVerificationBaseUrl,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.Config.AwsEmailPasswordResetBaseUrl,
	)

	closeMailChannel := deps.initRabbitmqMailChannel()

	if err := bootstrap.EnsureDefaultRoles(context.Background(), deps.RoleRepository); err != nil {
		deps.Logger.Error(context.Background(), "Could not ensure default roles.", dl.Entry("err", err))
		panic(err)
	}

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeMailChannel,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqMailChannel() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqEmailExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqEmailQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqEmailQueue,
		deps.Config.RabbitmqEmailRoutingKey,
		deps.Config.RabbitmqEmailExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.MailPublisher = notifications.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqEmailExchange,
		deps.Config.RabbitmqEmailRoutingKey,
		deps.Config.VerificationTokenValidDuration,
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)
	deps.MailConsumer = emailnotifications.New(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqEmailQueue,
		deps.EmailSender,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down mail channel.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Mail channel shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
