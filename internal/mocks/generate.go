package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/tournament --output domain/tournament --outpkg tournamentmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Catalog --dir ../domain/team --output domain/team --outpkg teammock --filename catalog_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Directory --dir ../domain/account --output domain/account --outpkg accountmock --filename directory_mock.go
