package domain

// HostInfo describes the operating system the tool runs on.
type HostInfo struct {
	OS              string `json:"os" yaml:"os"`
	Arch            string `json:"arch" yaml:"arch"`
	Family          string `json:"family" yaml:"family"`
	Hostname        string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformFamily  string `json:"platform_family,omitempty" yaml:"platform_family,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
}
