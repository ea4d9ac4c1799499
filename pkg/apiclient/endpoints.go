/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apiclient

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Post endpoints.
func (e *Endpoints) Posts() string {
	return "/posts"
}

func (e *Endpoints) Post(id int) string {
	return fmt.Sprintf("/posts/%s", url.PathEscape(strconv.Itoa(id)))
}

func (e *Endpoints) PostComments(id int) string {
	return fmt.Sprintf("/posts/%s/comments", url.PathEscape(strconv.Itoa(id)))
}

// User endpoints.
func (e *Endpoints) UserPosts(userID int) string {
	return fmt.Sprintf("/users/%s/posts", url.PathEscape(strconv.Itoa(userID)))
}
