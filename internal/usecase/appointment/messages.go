package appointment

// User-facing messages, in the salon's locale.
const (
	msgDateRequired        = "Fecha no proporcionada"
	msgDateInvalid         = "Fecha inválida, use el formato AAAA-MM-DD"
	msgWorkerRequired      = "Trabajador no proporcionado"
	msgGloballyClosed      = "La fecha seleccionada está cerrada"
	msgWorkerClosed        = "La fecha seleccionada está cerrada para el trabajador"
	msgInvalidHours        = "El horario configurado para la fecha no es válido"
	msgAvailableOK         = "Fechas disponibles obtenidas correctamente"
	msgAvailableFailed     = "Error al obtener las fechas disponibles"
	msgUnavailableOK       = "Fechas no disponibles obtenidas correctamente"
	msgUnavailableFailed   = "Error al obtener las fechas no disponibles"
	msgBookingInvalid      = "Datos de la cita no proporcionados o inválidos"
	msgBookingPast         = "No es posible agendar una cita en el pasado"
	msgServiceNotFound     = "Servicio no encontrado"
	msgWorkerNotFound      = "Trabajador no encontrado"
	msgWorkerNotQualified  = "El trabajador no realiza este servicio"
	msgSlotUnavailable     = "Este horario ya no está disponible"
	msgBookingOK           = "Cita creada correctamente"
	msgBookingFailed       = "Error al crear la cita"
	msgAppointmentNotFound = "Cita no encontrada"
	msgInvalidStatus       = "Estado de cita inválido"
	msgInvalidTransition   = "La cita no puede cambiar a ese estado"
	msgStatusOK            = "Estado de la cita actualizado correctamente"
	msgStatusFailed        = "Error al actualizar el estado de la cita"
	msgCancelOK            = "Cita cancelada correctamente"
	msgCancelFailed        = "Error al cancelar la cita"
	msgListOK              = "Citas obtenidas correctamente"
	msgListFailed          = "Error al obtener las citas"
)
