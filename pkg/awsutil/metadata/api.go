/*
Package metadata discovers the AWS region from the EC2 instance metadata
service.
*/
package metadata

// GetRegion returns the region of the running instance. The result is cached;
// an error is returned if not running on AWS.
func GetRegion() (string, error) {
	return getRegion(defaultClient)
}
