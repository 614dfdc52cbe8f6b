// Package codebuild derives build metadata from the environment variables
// AWS CodeBuild sets for a running build.
//
// Every Accessor method is an independent lookup: it reads the variables it
// needs at call time through an environment.Provider, formats a result, and
// returns. Nothing is cached, nothing calls the network, and nothing retries.
//
// Example:
//
//	acc := codebuild.New(environment.OS{})
//	owner, name, err := acc.UserAndRepoName()
//	url := acc.CodePipelineURL("dlc-release")
package codebuild
