package ollama

//go:generate mockery --case underscore --output ollamamock --outpkg ollamamock --name Lister
//go:generate mockery --case underscore --output ollamamock --outpkg ollamamock --name DockerClient
